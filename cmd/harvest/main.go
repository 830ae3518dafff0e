package main

import "github.com/moretide/harvest/internal/cli"

func main() {
	cli.Execute()
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user and account",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	me, err := api.WhoAmI(cmd.Context())
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strOr(me.User.FirstName, "") + " " + strOr(me.User.LastName, ""))
	if name == "" {
		name = me.User.Email
	}
	fmt.Printf("User:    %s <%s> (id %d)\n", name, me.User.Email, me.User.ID)
	fmt.Printf("Account: %s (%s)\n", me.Company.Name, me.Company.BaseURI)
	if me.User.Admin != nil && *me.User.Admin {
		fmt.Println("Role:    admin")
	}
	return nil
}

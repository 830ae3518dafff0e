package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
)

var (
	exportProject int64
	exportPerson  int64
	exportWeek    bool
	exportFrom    string
	exportTo      string
	exportFormat  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export day entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().Int64Var(&exportProject, "project", 0, "Export a project's entries")
	exportCmd.Flags().Int64Var(&exportPerson, "person", 0, "Export a person's entries")
	exportCmd.Flags().BoolVar(&exportWeek, "week", false, "Export this week (default)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date; defaults to today")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	if (exportProject == 0) == (exportPerson == 0) {
		return fmt.Errorf("pass exactly one of --project or --person")
	}
	from, to, _, err := resolveRange(exportFrom, exportTo)
	if err != nil {
		return err
	}
	entries, err := fetchEntries(cmd, exportProject, exportPerson, from, to)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Println(string(data))
	default: // csv
		printCSV(entries)
	}
	return nil
}

func printCSV(entries []harvest.DayEntry) {
	fmt.Println("date,project,task,notes,hours")
	for _, e := range entries {
		fmt.Printf("%s,%s,%s,%s,%g\n",
			e.SpentAt,
			csvEscape(strOr(e.Project, "")),
			csvEscape(strOr(e.Task, "")),
			csvEscape(strOr(e.Notes, "")),
			e.Hours,
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
	"github.com/moretide/harvest/internal/timecalc"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the timesheet for one day",
	Args:  cobra.NoArgs,
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day to show (defaults to today)")
}

func runDay(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	var daily harvest.Daily
	if dayDate == "" {
		daily, err = api.GetToday(cmd.Context())
	} else {
		var t time.Time
		if t, err = parseDate(dayDate); err != nil {
			return err
		}
		day, year := timecalc.DayOfYear(t)
		daily, err = api.GetDay(cmd.Context(), day, year)
	}
	if err != nil {
		return err
	}

	printDay(daily)
	return nil
}

// printDay renders a day view; running timers are marked with *.
func printDay(daily harvest.Daily) {
	fmt.Println(daily.ForDay.String())
	if len(daily.DayEntries) == 0 {
		fmt.Println("No entries.")
		return
	}

	var total float64
	for _, e := range daily.DayEntries {
		total += e.Hours
		mark := " "
		if e.Running() {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-24s %-20s %8s", mark,
			strOr(e.Project, "-"), strOr(e.Task, "-"), timecalc.FormatHours(e.Hours))
		if notes := strOr(e.Notes, ""); notes != "" {
			line += "  " + notes
		}
		fmt.Println(line)
	}
	fmt.Println("--------------------------------")
	fmt.Printf("Total: %s\n", timecalc.FormatHours(total))
}

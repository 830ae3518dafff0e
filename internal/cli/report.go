package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
	"github.com/moretide/harvest/internal/timecalc"
)

var (
	reportProject int64
	reportPerson  int64
	reportWeek    bool
	reportFrom    string
	reportTo      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show hours per day for a project or a person",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Int64Var(&reportProject, "project", 0, "Report on a project id")
	reportCmd.Flags().Int64Var(&reportPerson, "person", 0, "Report on a person id")
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "Report for this week (default)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date; defaults to today")
}

// resolveRange turns the --from/--to spellings into a date range and a
// printable label. Without --from the range is the current ISO week.
func resolveRange(fromStr, toStr string) (harvest.Date, harvest.Date, string, error) {
	now := time.Now()
	if fromStr == "" {
		if toStr != "" {
			return harvest.Date{}, harvest.Date{}, "", fmt.Errorf("--from is required when --to is specified")
		}
		monday, sunday := timecalc.WeekRange(now)
		return harvest.DateOf(monday), harvest.DateOf(sunday), timecalc.ISOWeekLabel(now), nil
	}

	f, err := parseDate(fromStr)
	if err != nil {
		return harvest.Date{}, harvest.Date{}, "", err
	}
	from := harvest.DateOf(f)
	to := harvest.DateOf(now)
	if toStr != "" {
		t, err := parseDate(toStr)
		if err != nil {
			return harvest.Date{}, harvest.Date{}, "", err
		}
		to = harvest.DateOf(t)
	}
	return from, to, fmt.Sprintf("%s to %s", from, to), nil
}

// fetchEntries pulls the day entries of a project or a person over a range.
func fetchEntries(cmd *cobra.Command, projectID, personID int64, from, to harvest.Date) ([]harvest.DayEntry, error) {
	api, err := newAPI()
	if err != nil {
		return nil, err
	}
	opts := harvest.EntriesOptions{From: from, To: to}
	if projectID != 0 {
		return api.GetProjectEntries(cmd.Context(), projectID, opts)
	}
	return api.GetUserEntries(cmd.Context(), personID, opts)
}

func runReport(cmd *cobra.Command, args []string) error {
	if (reportProject == 0) == (reportPerson == 0) {
		return fmt.Errorf("pass exactly one of --project or --person")
	}
	from, to, label, err := resolveRange(reportFrom, reportTo)
	if err != nil {
		return err
	}
	entries, err := fetchEntries(cmd, reportProject, reportPerson, from, to)
	if err != nil {
		return err
	}

	// Aggregate hours per day.
	totals := map[string]float64{}
	for _, e := range entries {
		totals[e.SpentAt.String()] += e.Hours
	}
	days := make([]string, 0, len(totals))
	for d := range totals {
		days = append(days, d)
	}
	sort.Strings(days)

	var grandTotal float64
	fmt.Println(label)
	fmt.Println("--------------------------------")
	for _, d := range days {
		fmt.Printf("%-20s%s\n", d, timecalc.FormatHours(totals[d]))
		grandTotal += totals[d]
	}
	fmt.Println("--------------------------------")
	fmt.Printf("%-20s%s\n", "Total", timecalc.FormatHours(grandTotal))
	return nil
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
	"github.com/moretide/harvest/internal/timecalc"
)

var (
	logNotes string
	logDate  string
)

var logCmd = &cobra.Command{
	Use:   "log <project-id> <task-id> <hours>",
	Short: "Log hours against a project task",
	Args:  cobra.ExactArgs(3),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Notes for the entry")
	logCmd.Flags().StringVar(&logDate, "date", "", "Day to log on (defaults to today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	projectID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}
	taskID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[1])
	}
	hours, err := strconv.ParseFloat(args[2], 64)
	if err != nil || hours < 0 {
		return fmt.Errorf("invalid hours %q", args[2])
	}

	spentAt := harvest.DateOf(time.Now())
	if logDate != "" {
		t, err := parseDate(logDate)
		if err != nil {
			return err
		}
		spentAt = harvest.DateOf(t)
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	params := &harvest.DayEntryParams{
		ProjectID: projectID,
		TaskID:    taskID,
		SpentAt:   spentAt,
		Hours:     harvest.Float64(hours),
	}
	if logNotes != "" {
		params.Notes = harvest.String(logNotes)
	}

	entry, err := api.CreateDayEntry(cmd.Context(), params)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s (entry %d)\n",
		timecalc.FormatHours(entry.Hours), entry.SpentAt, entry.ID)
	return nil
}

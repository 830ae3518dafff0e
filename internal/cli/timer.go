package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest/internal/timecalc"
)

var timerCmd = &cobra.Command{
	Use:   "timer <entry-id>",
	Short: "Start or stop the timer on a day entry",
	Long: `Toggles the timer on a day entry. The service keeps at most one
timer running; starting this one stops any other.`,
	Args: cobra.ExactArgs(1),
	RunE: runTimer,
}

func runTimer(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	entry, err := api.ToggleTimer(cmd.Context(), id)
	if err != nil {
		return err
	}

	if entry.Running() {
		fmt.Printf("Timer running on entry %d (%s)\n", entry.ID, strOr(entry.Project, "-"))
	} else {
		fmt.Printf("Timer stopped on entry %d. Logged: %s\n", entry.ID, timecalc.FormatHours(entry.Hours))
	}
	return nil
}

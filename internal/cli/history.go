package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Number of days to show")
	rootCmd.AddCommand(historyCmd)
}

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past days",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	records := d.Tracker.History(historyDays)
	if len(records) == 0 {
		fmt.Println("No history yet. Days are recorded at midnight rollover.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tFATIGUE\tSLEEP\tSTEPS\tMISSIONS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%.1fh\t%d\t%d\n",
			r.Date,
			r.FatiguePct,
			r.SleepHours,
			r.StepCount,
			r.MissionsDone,
		)
	}
	return w.Flush()
}

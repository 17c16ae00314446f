package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's fatigue score",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	st := d.Tracker.Status()

	fmt.Printf("Date:    %s\n", st.Date)
	fmt.Printf("Fatigue: %d/100\n", st.Score)
	fmt.Printf("Mood:    %s\n", st.Message)
	fmt.Printf("Tip:     %s\n", st.Recommendation)

	if len(st.Contributions) == 0 {
		fmt.Println("\nNothing logged yet today. Try 'ppoom log work 60'.")
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVITY\tIMPACT\tSHARE")
	for _, c := range st.Contributions {
		sign := "+"
		if c.Impact < 0 {
			sign = ""
		}
		fmt.Fprintf(w, "%s\t%s%.1f\t%.0f%%\n", c.Type, sign, c.Impact, c.SharePct)
	}
	return w.Flush()
}

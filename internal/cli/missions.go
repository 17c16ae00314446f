package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(missionsCmd)
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show today's missions",
	RunE:  runMissions,
}

func runMissions(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	missions := d.Tracker.Missions()
	if len(missions) == 0 {
		fmt.Println("No missions assigned yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tMISSION\tDIFFICULTY\tEXP")
	for _, m := range missions {
		mark := " "
		if m.Completed {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%d\n",
			mark,
			m.ID,
			m.Emoji,
			m.Title,
			m.Difficulty,
			m.ExpReward,
		)
	}
	return w.Flush()
}

package cli

import (
	"fmt"

	"github.com/ppoom-app/ppoom/internal/app/progression"
	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your mission streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	st := d.Tracker.Streak()

	fmt.Printf("Current streak: %d days\n", st.CurrentStreak)
	fmt.Printf("Longest streak: %d days\n", st.LongestStreak)
	if st.LastCompletedDate != "" {
		fmt.Printf("Last full day:  %s\n", st.LastCompletedDate)
	}

	bonus := progression.BonusMultiplier(st.CurrentStreak)
	if bonus > 0 {
		fmt.Printf("Exp bonus:      +%.0f%%\n", bonus*100)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completeCmd)
}

var completeCmd = &cobra.Command{
	Use:   "complete MISSION_ID",
	Short: "Mark a mission as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Tracker.CompleteMission(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s done! +%d exp\n", result.Mission.Emoji, result.Mission.Title, result.ExpGained)

	if result.LevelUp.LeveledUp {
		fmt.Printf("Level up! Your companion is now level %d.\n", result.LevelUp.NewLevel)
		for _, c := range result.LevelUp.UnlockedCostumes {
			fmt.Printf("New costume unlocked: %s\n", c.Name)
		}
	}

	if result.AllCompleted {
		fmt.Printf("All missions done today. Streak: %d days.\n", result.Streak.CurrentStreak)
	}
	return nil
}

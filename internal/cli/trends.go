package cli

import (
	"fmt"

	"github.com/ppoom-app/ppoom/internal/app/insight"
	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trendsCmd)
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show your weekly fatigue trends",
	RunE:  runTrends,
}

func runTrends(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	report := d.Tracker.Trends()

	if report.Trend == insight.TrendInsufficient {
		fmt.Println("Not enough history yet. Keep logging for a few more days.")
		return nil
	}

	fmt.Printf("Trend:       %s\n", report.Trend)
	fmt.Printf("             %s\n", report.TrendDescription)
	fmt.Printf("Avg fatigue: %.0f/100\n", report.AvgFatigue)
	if report.WorstDay != "" {
		fmt.Printf("Hardest day: %s\n", report.WorstDay)
		fmt.Printf("Easiest day: %s\n", report.BestDay)
	}

	if len(report.Insights) > 0 {
		fmt.Println()
		for _, ins := range report.Insights {
			fmt.Printf("%s %s\n", ins.Emoji, ins.Title)
			fmt.Printf("   %s\n", ins.Description)
		}
	}
	return nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/ppoom-app/ppoom/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log TYPE MINUTES [NOTE]",
	Short: "Log an activity for today",
	Long: `Log an activity and recompute today's fatigue score.

Types: ` + activityTypeList() + `

Examples:
  ppoom log work 120
  ppoom log sleep 420 "slept well"
  ppoom log exercise 30 morning run`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	typ := domain.ActivityType(args[0])
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("minutes must be a number, got %q", args[1])
	}
	note := strings.Join(args[2:], " ")

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	rec, err := d.Tracker.AddActivity(typ, minutes, note)
	if err != nil {
		return err
	}

	st := d.Tracker.Status()
	fmt.Printf("Logged %d min of %s.\n", rec.DurationMinutes, rec.Type)
	fmt.Printf("Fatigue is now %d/100. %s\n", st.Score, st.Message)
	return nil
}

func activityTypeList() string {
	types := domain.AllActivityTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

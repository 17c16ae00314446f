package cli

import (
	"fmt"

	"github.com/ppoom-app/ppoom/internal/app/progression"
	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/ppoom-app/ppoom/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(characterCmd)
}

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Show your companion character",
	RunE:  runCharacter,
}

func runCharacter(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ch := d.Tracker.Character()
	required := progression.RequiredExp(ch.Level)

	fmt.Printf("Level:    %d / %d\n", ch.Level, domain.MaxLevel)
	fmt.Printf("Exp:      %d / %d\n", ch.Exp, required)
	fmt.Printf("Costume:  %s\n", ch.EquippedCostumeID)

	fmt.Println("\nCostumes:")
	for _, c := range domain.CostumeCatalog() {
		mark := " "
		if ch.HasCostume(c.ID) {
			mark = "✓"
		}
		fmt.Printf("  %s %-16s (level %d)\n", mark, c.Name, c.UnlockLevel)
	}
	return nil
}

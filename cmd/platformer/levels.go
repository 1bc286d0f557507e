package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the campaign",
	Long: `Shows the levels the campaign plays, in order. With --levels the
list comes from the YAML pack; otherwise the built-in levels are shown.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	game, _ := loadCampaign()
	lvls := game.Levels()

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Printf("%s levels:\n", game.Title())
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-8s  %-7s  %-5s  %s\n", "#", maxIDLen, "ID", "Length", "Enemies", "Coins", "Name")
	fmt.Printf("  %-3s  %-*s  %-8s  %-7s  %-5s  %s\n", "-", maxIDLen, "--", "------", "-------", "-----", "----")

	// Print levels
	for i, l := range lvls {
		fmt.Printf("  %-3d  %-*s  %-8.0f  %-7d  %-5d  %s\n",
			i, maxIDLen, l.ID, l.EndX, len(l.Enemies), len(l.Coins), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <#>' to start from a level.")
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick Play to start the campaign, choose a start level with Left/Right,
or open the high scores. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change start level
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().IntVar(&flagStartFrom, "level", 0, "Zero-based level selected at start")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume from 0 to 1")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	_, campaign := loadCampaign()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	sink, closeSound := openSound()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(campaign, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with size changes and the chosen level
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(campaign, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// New seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(platformer.New(), store, cfg, sink); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	closeSound()
	if store != nil {
		store.Close()
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/sound"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagVolume float64
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing from the first level, or from --level.

Controls:
  Left/Right, A/D   - Move (Shift+arrow or Z to run)
  Space/Up/W        - Jump; hold in the air to fly
  X/F               - Shoot
  P                 - Pause
  R                 - Restart the level (or the campaign once won)
  Esc/B             - Leave (when paused or finished)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  platformer play
  platformer play --level 2
  platformer play --mute
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartFrom, "level", 0, "Zero-based level to start from")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume from 0 to 1")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, _ := loadCampaign()
	// The terminal belongs to the game from here on.
	game.SetLogger(nil)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	sink, closeSound := openSound()

	// Run the game
	runErr := tui.Run(game, store, cfg, sink)

	closeSound()
	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openSound starts audio unless muted. Without an audio device the game
// runs silent.
func openSound() (tui.EventSink, func()) {
	if flagMute || flagVolume <= 0 {
		return nil, func() {}
	}
	player := sound.NewPlayer(flagVolume)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return player, player.Close
}

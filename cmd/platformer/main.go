// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer play            - Play the campaign
//	platformer menu            - Title menu with level select and high scores
//	platformer levels          - List the levels of the campaign
//	platformer scores          - Show the best runs
//	platformer serve           - Start SSH server for remote play
//	platformer stream          - Serve the game over WebSocket
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.platformer/runs.db)
//	--config <path>   - Custom platformer.yaml
//	--levels <dir>    - Load levels from a YAML pack
//	--debug           - Debug logging
//	--low-power       - Drop every other frame
//
// Flag defaults can come from PLATFORMER_* variables or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

const defaultDBPath = "~/.platformer/runs.db"

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevels    string
	flagDebug     bool
	flagLowPower  bool
	flagStartFrom int

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Sky Runner - a side-scrolling platformer in your terminal",
	Long: `Sky Runner is a side-scrolling platformer for the terminal.
Run, jump, fly, stomp enemies and reach the flag at the end of each level.

Available commands:
  play     - Play the campaign directly
  menu     - Title menu with level select and high scores
  levels   - List the levels of the campaign
  scores   - View the best runs
  serve    - Start SSH server for remote play
  stream   - Serve the game to WebSocket clients

Examples:
  platformer play
  platformer play --level 2
  platformer menu --low-power
  platformer serve --ssh :2222
  platformer stream --addr :8080`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		platformer.SetConfigPath(flagConfig)
		platformer.SetLevelsDir(flagLevels)
	},
}

func init() {
	// .env must be loaded before the flag defaults read the environment.
	// A broken file should not stop the game.
	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.EnvOr(config.EnvDB, defaultDBPath), "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.EnvOr(config.EnvConfig, ""), "Path to custom platformer.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", config.EnvOr(config.EnvLevels, ""), "Directory of YAML level files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLowPower, "low-power", false, "Simulate every other frame")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(streamCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    flagStartFrom,
	}
	if flagLowPower {
		cfg.FrameSkip = 1
	}
	return cfg
}

// loadCampaign resolves the config and levels the flags point at and
// describes the campaign for menus.
func loadCampaign() (*platformer.Game, tui.Campaign) {
	game := platformer.New()
	game.SetLogger(logger)
	game.Reset(runtimeConfig(80, 24))

	lvls := game.Levels()
	names := make([]string, 0, len(lvls))
	for _, l := range lvls {
		names = append(names, l.Name)
	}
	return game, tui.CampaignOf(game, names)
}

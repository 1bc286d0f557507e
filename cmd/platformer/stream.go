package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platform/stream"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagStreamAddr string

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Serve the game over WebSocket",
	Long: `Start an HTTP server with a WebSocket endpoint at /ws.

Every connection plays its own game. Clients send
  {"type":"input","actions":["right","jump"]}
whenever the set of held actions changes, or {"type":"restart"}, and
receive a "hello" message followed by one "frame" per tick with the
world snapshot and the events of that tick. Add ?name=<player> to the
URL to put the player's name on the scoreboard.

Examples:
  platformer stream
  platformer stream --addr :9000 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runStream,
}

func init() {
	streamCmd.Flags().StringVar(&flagStreamAddr, "addr", config.EnvOr(config.EnvAddr, ":8080"), "HTTP listen address")
}

func runStream(_ *cobra.Command, _ []string) {
	// Resolve config and levels once so problems show up at startup.
	loadCampaign()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	srv := stream.NewServer(stream.Config{
		Runtime: runtimeConfig(80, 24),
		Store:   store,
		Logger:  logger.WithPrefix("platformer-stream"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving WebSocket sessions on ws://localhost:%s/ws\n", portOf(flagStreamAddr))
	fmt.Println("Press Ctrl+C to stop")

	runErr := srv.ListenAndServe(ctx, flagStreamAddr)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}

// portOf returns the port of a host:port address, or the address itself.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}

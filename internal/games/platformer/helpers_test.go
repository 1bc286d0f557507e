package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// flatLevel is an empty level: ground only.
func flatLevel(id string) levels.Template {
	return levels.Template{ID: id, Name: id, WorldWidth: 4000, EndX: 3000}
}

// newRunningGame builds a started game over the given levels.
func newRunningGame(t *testing.T, mutate func(*config.PlatformerConfig), lvls ...levels.Template) *Game {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if len(lvls) == 0 {
		lvls = []levels.Template{flatLevel("flat")}
	}
	g := NewWithConfig(cfg, lvls)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	g.Start()
	return g
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func empty() core.InputFrame {
	return core.NewInputFrame()
}

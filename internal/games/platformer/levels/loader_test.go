package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

const ground = 455

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath(), ground)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "01-flat" || lvls[1].ID != "02-arena" {
		t.Errorf("levels not in ID order: %s, %s", lvls[0].ID, lvls[1].ID)
	}
}

func TestLoaderLoadFlat(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath(), ground)

	lvl, err := loader.LoadByID("01-flat")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Flat Run" {
		t.Errorf("expected Name 'Flat Run', got %q", lvl.Name)
	}
	if lvl.WorldWidth != 1200 || lvl.EndX != 1000 {
		t.Errorf("expected 1200/1000, got %v/%v", lvl.WorldWidth, lvl.EndX)
	}
	if len(lvl.Coins) != 2 || lvl.Coins[0].Y != ground-20 || lvl.Coins[0].R != 10 || lvl.Coins[1].R != 12 {
		t.Errorf("coins parsed incorrectly: %+v", lvl.Coins)
	}
	if lvl.Platforms[0].H != 12 || lvl.Platforms[0].Y != ground-60 {
		t.Errorf("platform defaults not applied: %+v", lvl.Platforms[0])
	}
	if lvl.Blocks[0].Kind != levels.BlockQuestion || lvl.Blocks[0].State != levels.BlockFull || lvl.Blocks[0].W != 24 {
		t.Errorf("block defaults not applied: %+v", lvl.Blocks[0])
	}
	if lvl.Powerups[0].Value != 30 {
		t.Errorf("expected powerup value 30, got %d", lvl.Powerups[0].Value)
	}
	if lvl.FilePath == "" {
		t.Error("FilePath should be recorded")
	}
}

func TestLoaderNormalizesKindAndName(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath(), ground)

	lvl, err := loader.LoadByID("02-arena")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Enemies[0].Kind != "elite" {
		t.Errorf("kind should be lowercased, got %q", lvl.Enemies[0].Kind)
	}
	if lvl.Name != "02-arena" {
		t.Errorf("missing name should default to ID, got %q", lvl.Name)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath(), ground)
	if _, err := loader.LoadByID("99-nope"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderRejectsInvalidPack(t *testing.T) {
	dir := t.TempDir()
	bad := "id: bad\nworld_width: 500\nend_x: 900\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := levels.NewLoader(dir, ground).LoadAll()
	if !errors.Is(err, levels.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestParseYAMLRejectsUnknownBlock(t *testing.T) {
	data := []byte("id: x\nworld_width: 500\nend_x: 400\nblocks:\n  - {x: 1, lift: 1, kind: lava}\n")
	if _, err := levels.ParseYAML(data, ground); !errors.Is(err, levels.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

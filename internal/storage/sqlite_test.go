package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "platformer", Score: 100, Coins: 1, Level: 0},
		{GameID: "platformer", Score: 50, Coins: 0, Level: 0},
		{GameID: "platformer", Score: 2200, Coins: 12, Level: 2, Won: true, Ticks: 9000, Player: "alice"},
		{GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("platformer", 10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, 2200, top[0].Score)
	assert.Equal(t, 100, top[1].Score)
	assert.Equal(t, 50, top[2].Score)

	best := top[0]
	assert.True(t, best.Won)
	assert.Equal(t, 12, best.Coins)
	assert.Equal(t, 2, best.Level)
	assert.Equal(t, uint64(9000), best.Ticks)
	assert.Equal(t, "alice", best.Player)
	assert.Equal(t, "local", top[1].Player, "empty player defaults to local")
	assert.False(t, best.CreatedAt.IsZero())
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		if _, err := store.SaveRun(Run{GameID: "platformer", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("platformer", 5)
	require.NoError(t, err)
	assert.Len(t, top, 5)
	assert.Equal(t, 140, top[0].Score)

	top, err = store.TopRuns("platformer", 0)
	require.NoError(t, err)
	assert.Len(t, top, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}

	store.SaveRun(Run{GameID: "platformer", Score: 300})
	store.SaveRun(Run{GameID: "platformer", Score: 700})

	score, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 700 {
		t.Errorf("Expected high score 700, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{GameID: "platformer", Score: 300})
	store.SaveRun(Run{GameID: "other", Score: 10})

	require.NoError(t, store.ClearRuns("platformer"))

	top, err := store.TopRuns("platformer", 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	other, err := store.TopRuns("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GameStats("platformer")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.RunsCount)
	assert.True(t, stats.LastPlayed.IsZero())

	store.SaveRun(Run{GameID: "platformer", Score: 100, Coins: 2})
	store.SaveRun(Run{GameID: "platformer", Score: 300, Coins: 5, Won: true})

	stats, err = store.GameStats("platformer")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RunsCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(7), stats.TotalCoins)
	assert.False(t, stats.LastPlayed.IsZero())
}

package storage

import "github.com/vovakirdan/tui-platformer/internal/core"

// Recorder watches one player's ticks and saves a run each time it ends,
// either by defeat or by clearing the last level.
type Recorder struct {
	store    *Store
	gameID   string
	player   string
	ticks    uint64
	maxLevel int
	last     core.GameState
}

// NewRecorder creates a recorder. A nil store records nothing but still
// tracks the run.
func NewRecorder(store *Store, gameID, player string) *Recorder {
	if player == "" {
		player = "local"
	}
	return &Recorder{store: store, gameID: gameID, player: player}
}

// Observe consumes the result of one tick and returns the runs it saved.
// Runs ending with a zero score are not worth a scoreboard row.
func (r *Recorder) Observe(res core.StepResult) ([]Run, error) {
	st := res.State
	if st.Started && !st.Paused && !r.last.GameOver {
		r.ticks++
	}
	r.maxLevel = core.Max(r.maxLevel, st.Level)
	r.last = st

	var saved []Run
	for _, e := range res.Events {
		var won bool
		switch e.Kind {
		case core.EventPlayerDefeated:
		case core.EventWon:
			won = true
		default:
			continue
		}

		run := Run{
			GameID: r.gameID,
			Player: r.player,
			Score:  e.Amount,
			Coins:  st.Coins,
			Level:  core.Max(r.maxLevel, e.Level),
			Won:    won,
			Ticks:  r.ticks,
		}
		r.ticks = 0
		r.maxLevel = st.Level

		if r.store == nil || run.Score <= 0 {
			continue
		}
		id, err := r.store.SaveRun(run)
		if err != nil {
			return saved, err
		}
		run.ID = id
		saved = append(saved, run)
	}
	return saved, nil
}

// Restart forgets the current run, for a new game from scratch.
func (r *Recorder) Restart() {
	r.ticks = 0
	r.maxLevel = 0
	r.last = core.GameState{}
}

// Ticks returns the ticks played in the current run.
func (r *Recorder) Ticks() uint64 {
	return r.ticks
}

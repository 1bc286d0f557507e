// Package sound plays short synthesized cues for simulation events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueCoin
	CueBlock
	CuePowerup
	CueShot
	CueStomp
	CueHurt
	CueEnemyDown
	CueDefeat
	CueLevel
	CueWin
)

// CueFor maps an event to its cue. Pause, resume and reset are silent.
func CueFor(e core.Event) Cue {
	switch e.Kind {
	case core.EventCoin:
		return CueCoin
	case core.EventBlockStruck:
		return CueBlock
	case core.EventPowerup:
		return CuePowerup
	case core.EventShot:
		return CueShot
	case core.EventStomp:
		return CueStomp
	case core.EventDamage:
		return CueHurt
	case core.EventEnemyDefeated:
		return CueEnemyDown
	case core.EventPlayerDefeated:
		return CueDefeat
	case core.EventLevelComplete:
		return CueLevel
	case core.EventWon:
		return CueWin
	}
	return CueNone
}

// cuesFor returns the distinct cues of one tick in event order. A stomp
// that also defeats its enemy only plays once per cue.
func cuesFor(events []core.Event) []Cue {
	var out []Cue
	seen := make(map[Cue]bool)
	for _, e := range events {
		c := CueFor(e)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	// A win completes the last level too.
	if seen[CueWin] && seen[CueLevel] {
		filtered := out[:0]
		for _, c := range out {
			if c != CueLevel {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}
	return out
}

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the audio device. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the cues for one tick of events.
func (p *Player) Handle(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume == 0 {
		return
	}
	cues := cuesFor(events)
	if len(cues) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if s := Synthesize(c, p.volume, sampleRate); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops every sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

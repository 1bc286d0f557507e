package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Cue
	}{
		{core.EventCoin, CueCoin},
		{core.EventBlockStruck, CueBlock},
		{core.EventPowerup, CuePowerup},
		{core.EventShot, CueShot},
		{core.EventStomp, CueStomp},
		{core.EventDamage, CueHurt},
		{core.EventEnemyDefeated, CueEnemyDown},
		{core.EventPlayerDefeated, CueDefeat},
		{core.EventLevelComplete, CueLevel},
		{core.EventWon, CueWin},
		{core.EventPaused, CueNone},
		{core.EventResumed, CueNone},
		{core.EventReset, CueNone},
	}

	for _, tt := range tests {
		if got := CueFor(core.Event{Kind: tt.kind}); got != tt.want {
			t.Errorf("CueFor(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestCuesForDeduplicates(t *testing.T) {
	events := []core.Event{
		{Kind: core.EventBlockStruck},
		{Kind: core.EventCoin, Source: "block"},
		{Kind: core.EventCoin},
		{Kind: core.EventPaused},
	}
	assert.Equal(t, []Cue{CueBlock, CueCoin}, cuesFor(events))
}

func TestCuesForWinSupersedesLevel(t *testing.T) {
	events := []core.Event{
		{Kind: core.EventLevelComplete},
		{Kind: core.EventWon},
	}
	assert.Equal(t, []Cue{CueWin}, cuesFor(events))
}

func TestSynthesizeEveryCue(t *testing.T) {
	buf := make([][2]float64, 512)
	for c := range cueNotes {
		s := Synthesize(c, 0.5, sampleRate)
		require.NotNil(t, s, "cue %d", c)

		total := 0
		for {
			n, ok := s.Stream(buf)
			for _, smp := range buf[:n] {
				assert.LessOrEqual(t, smp[0], 1.0)
				assert.GreaterOrEqual(t, smp[0], -1.0)
			}
			total += n
			if !ok {
				break
			}
		}
		assert.Positive(t, total, "cue %d produced no samples", c)
		assert.Less(t, total, sampleRate.N(2e9), "cue %d is too long", c)
	}
}

func TestSynthesizeNone(t *testing.T) {
	assert.Nil(t, Synthesize(CueNone, 1, sampleRate))
}

func TestHandleWithoutDeviceIsSilent(t *testing.T) {
	p := NewPlayer(2)
	assert.InDelta(t, 1.0, p.volume, 1e-9)
	p.Handle([]core.Event{{Kind: core.EventCoin}})
	p.Close()
}

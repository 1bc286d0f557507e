package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone, optionally sliding in pitch.
type oscillator struct {
	freq, slide float64
	phase       float64
	pos, total  int
	wave        Wave
	rate        beep.SampleRate
	rng         *rand.Rand
}

// tone returns a streamer that plays freq for d. slide is the pitch change
// in Hz over the whole tone.
func tone(freq, slide float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		slide: slide,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(freq))), //#nosec G404 -- noise, not crypto
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		f := o.freq + o.slide*float64(o.pos)/float64(o.total)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack samples and out over the last
// release samples of total.
type envelope struct {
	s                    beep.Streamer
	pos, attack, release int
	total                int
}

func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(float64(left)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales s linearly. math.Log2(0) is -Inf, so zero means silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a cue.
type note struct {
	freq, slide float64
	d           time.Duration
	wave        Wave
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	release := n.d / 2
	return shape(tone(n.freq, n.slide, n.d, n.wave, rate), n.d, 4*time.Millisecond, release, rate)
}

var cueNotes = map[Cue][]note{
	CueCoin:      {{988, 0, 60 * time.Millisecond, WaveSquare}, {1319, 0, 180 * time.Millisecond, WaveSquare}},
	CueBlock:     {{220, -60, 90 * time.Millisecond, WaveSquare}},
	CuePowerup:   {{523, 0, 70 * time.Millisecond, WaveSine}, {659, 0, 70 * time.Millisecond, WaveSine}, {784, 0, 140 * time.Millisecond, WaveSine}},
	CueShot:      {{1200, -700, 80 * time.Millisecond, WaveSaw}},
	CueStomp:     {{330, -200, 100 * time.Millisecond, WaveSquare}},
	CueHurt:      {{140, -40, 160 * time.Millisecond, WaveSaw}},
	CueEnemyDown: {{0, 0, 120 * time.Millisecond, WaveNoise}},
	CueDefeat:    {{392, 0, 150 * time.Millisecond, WaveSquare}, {330, 0, 150 * time.Millisecond, WaveSquare}, {196, -60, 400 * time.Millisecond, WaveSquare}},
	CueLevel:     {{523, 0, 100 * time.Millisecond, WaveSquare}, {784, 0, 100 * time.Millisecond, WaveSquare}, {1047, 0, 250 * time.Millisecond, WaveSquare}},
	CueWin:       {{523, 0, 120 * time.Millisecond, WaveSine}, {659, 0, 120 * time.Millisecond, WaveSine}, {784, 0, 120 * time.Millisecond, WaveSine}, {1047, 0, 500 * time.Millisecond, WaveSine}},
}

// Synthesize builds the streamer for c at the given volume, or nil if c
// has no sound.
func Synthesize(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rate))
	}
	return gain(beep.Seq(parts...), vol)
}

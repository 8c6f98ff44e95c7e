// Package audio synthesizes short cues for simulation events
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-crawler/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a finite tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero is silent because log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped tone in a cue
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.duration, n.wave, rate)
	return NewEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/2, rate)
}

// cueNotes are played in sequence
var cueNotes = map[engine.Cue][]note{
	engine.CueHit:      {{110, 60 * time.Millisecond, WaveSaw}},
	engine.CueKill:     {{0, 90 * time.Millisecond, WaveNoise}, {70, 120 * time.Millisecond, WaveSine}},
	engine.CuePickUp:   {{880, 70 * time.Millisecond, WaveSine}, {1320, 90 * time.Millisecond, WaveSine}},
	engine.CueDescend:  {{440, 90 * time.Millisecond, WaveSquare}, {330, 90 * time.Millisecond, WaveSquare}, {220, 150 * time.Millisecond, WaveSquare}},
	engine.CueVictory:  {{523, 100 * time.Millisecond, WaveSine}, {659, 100 * time.Millisecond, WaveSine}, {784, 100 * time.Millisecond, WaveSine}, {1046, 250 * time.Millisecond, WaveSine}},
	engine.CueGameOver: {{196, 200 * time.Millisecond, WaveSaw}, {147, 200 * time.Millisecond, WaveSaw}, {98, 400 * time.Millisecond, WaveSaw}},
}

// CueStreamer builds the finite sound for a cue at the given linear volume
// Unknown cues return false
func CueStreamer(c engine.Cue, rate beep.SampleRate, vol float64) (beep.Streamer, bool) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, false
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return newVolume(beep.Seq(parts...), vol), true
}

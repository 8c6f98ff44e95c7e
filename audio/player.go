package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the speaker; implements engine.AudioPlayer
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	log    *logrus.Entry
}

// NewPlayer opens the speaker device
// Hosts treat failure as non-fatal and run silent
func NewPlayer(volume float64, log *logrus.Entry) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	p := &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue on the mixer without blocking the tick
func (p *Player) Play(c engine.Cue) {
	s, ok := CueStreamer(c, sampleRate, p.volume)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	if p.log != nil {
		p.log.WithField("cue", c).Trace("cue queued")
	}
}

// Close silences the mixer and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Recorder collects cues instead of playing them, for tests and headless runs
type Recorder struct {
	Cues []engine.Cue
}

func (r *Recorder) Play(c engine.Cue) {
	r.Cues = append(r.Cues, c)
}

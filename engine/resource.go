package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/navigation"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/render"
)

// Cue is a sound event raised by systems
type Cue uint8

const (
	CueHit Cue = iota
	CueKill
	CuePickUp
	CueDescend
	CueVictory
	CueGameOver
)

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(Cue)
}

// Resources is the explicit simulation context handed to every system call
// Owned by the game loop; TurnState and input change only through the setters
type Resources struct {
	Map    *dungeon.Map
	Theme  dungeon.Theme
	Camera *Camera
	Level  int
	Turns  int // Completed player turns this run

	Rand *rand.Rand
	Log  *logrus.Entry

	Intents  *Intents
	Commands *CommandBuffer
	Draw     *render.Batch
	Messages *MessageLog
	Audio    AudioPlayer // Optional

	// Distance is the per-monster-phase Dijkstra map toward the player, buffers reused
	Distance *navigation.DistanceField

	// PlayerActed is raised by input handling when the key consumed the player's turn
	PlayerActed bool
	// QuitRequested latches when the player presses Quit
	QuitRequested bool

	turn  TurnState
	input input.Key
}

// NewResources builds a context for the given map
func NewResources(m *dungeon.Map, rng *rand.Rand, log *logrus.Entry) *Resources {
	return &Resources{
		Map:      m,
		Rand:     rng,
		Log:      log,
		Intents:  &Intents{},
		Commands: NewCommandBuffer(),
		Draw:     render.NewBatch(),
		Messages: NewMessageLog(5),
		Distance: navigation.NewDistanceField(m.Width, m.Height, parameter.NavMaxDepth),
		turn:     AwaitingInput,
	}
}

// Turn returns the current TurnState
func (r *Resources) Turn() TurnState {
	return r.turn
}

// SetTurn replaces the TurnState
func (r *Resources) SetTurn(s TurnState) {
	if s != r.turn && r.Log != nil {
		r.Log.WithFields(logrus.Fields{"from": r.turn, "to": s}).Debug("turn state")
	}
	r.turn = s
}

// Input returns this tick's key, KeyNone when absent
func (r *Resources) Input() input.Key {
	return r.input
}

// SetInput stores the host key for this tick
func (r *Resources) SetInput(k input.Key) {
	r.input = k
}

// Play forwards a cue to the audio player if one is attached
func (r *Resources) Play(c Cue) {
	if r.Audio != nil {
		r.Audio.Play(c)
	}
}

// Flush is a sub-phase boundary: structural commands apply, pending intents become visible
func (r *Resources) Flush(w *World) {
	r.Commands.Flush(w)
	r.Intents.Commit()
}

// MarkAllFOVDirty forces every field of view to recompute, used after map changes
func MarkAllFOVDirty(w *World) {
	for _, e := range w.Components.FOV.All() {
		fov, _ := w.Components.FOV.Get(e)
		fov.Dirty = true
		w.Components.FOV.Set(e, fov)
	}
}

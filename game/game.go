// Package game owns one simulation run: world, resources, scheduler and level transitions
package game

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/render"
	"github.com/lixenwraith/vi-crawler/spawner"
	"github.com/lixenwraith/vi-crawler/system"
	"github.com/lixenwraith/vi-crawler/template"
)

// Config is what the host decides before a run starts
type Config struct {
	Seed          int64
	Width, Height int
	FinalLevel    int // Zero-based depth holding the amulet
}

// DefaultConfig returns the standard map size with the given seed
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		Width:      parameter.MapWidth,
		Height:     parameter.MapHeight,
		FinalLevel: parameter.FinalLevel,
	}
}

// Game is the simulation context driven by the host once per tick
type Game struct {
	cfg       Config
	templates *template.Templates
	log       *logrus.Entry
	rng       *rand.Rand

	world     *engine.World
	res       *engine.Resources
	scheduler *engine.Scheduler
	refresh   []engine.Stage // FOV then draw, used outside the phase groups

	audio  engine.AudioPlayer
	layout *dungeon.Result
}

// New generates level zero and places the player
// Generation failure is returned before any world is handed out
func New(cfg Config, ts *template.Templates, log *logrus.Entry) (*Game, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	g := &Game{
		cfg:       cfg,
		templates: ts,
		log:       log.WithField("seed", cfg.Seed),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		scheduler: system.NewScheduler(),
		refresh: []engine.Stage{
			engine.NewStage("fov", system.NewFOVSystem()),
			system.NewRenderStage(),
		},
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetAudio attaches a cue player; nil disables sound
func (g *Game) SetAudio(p engine.AudioPlayer) {
	g.audio = p
	g.res.Audio = p
}

// Tick runs one scheduler group with the host key
// Level transitions happen here; a failed regeneration keeps the current level and returns the error
func (g *Game) Tick(key input.Key) error {
	g.res.SetInput(key)
	g.scheduler.Tick(g.world, g.res)
	g.res.SetInput(input.KeyNone)

	switch g.res.Turn() {
	case engine.NextLevel:
		if err := g.descend(); err != nil {
			g.res.SetTurn(engine.AwaitingInput)
			g.present()
			return err
		}
		g.present()
	case engine.GameOver, engine.Victory:
		g.present()
	}
	return nil
}

// Restart discards the run and generates a fresh level zero, continuing the seeded stream
func (g *Game) Restart() error {
	return g.start()
}

// State returns the current TurnState
func (g *Game) State() engine.TurnState {
	return g.res.Turn()
}

// World exposes the entity store, for hosts and tests
func (g *Game) World() *engine.World {
	return g.world
}

// Resources exposes the simulation context
func (g *Game) Resources() *engine.Resources {
	return g.res
}

// Batch returns the draw commands produced by the last tick
func (g *Game) Batch() *render.Batch {
	return g.res.Draw
}

// Level returns the zero-based depth
func (g *Game) Level() int {
	return g.res.Level
}

// Layout returns the generator output of the current level
func (g *Game) Layout() *dungeon.Result {
	return g.layout
}

// QuitRequested reports whether the player asked to leave
func (g *Game) QuitRequested() bool {
	return g.res.QuitRequested
}

// Summary describes the run for the morgue
func (g *Game) Summary() Summary {
	return Summary{Seed: g.cfg.Seed, Depth: g.res.Level, Outcome: g.res.Turn(), Turns: g.res.Turns}
}

// Summary is the end-of-run record
type Summary struct {
	Seed    int64
	Depth   int
	Outcome engine.TurnState
	Turns   int
}

func (g *Game) start() error {
	layout, err := g.generate(0)
	if err != nil {
		return err
	}

	// Restart reuses the arena so handles from the abandoned run go stale
	w := g.world
	if w == nil {
		w = engine.NewWorld()
	} else {
		w.Clear()
	}
	res := engine.NewResources(layout.Map, g.rng, g.log)
	res.Audio = g.audio
	res.Theme = layout.Theme
	spawner.SpawnPlayer(w, layout.PlayerStart)

	g.world, g.res, g.layout = w, res, layout
	g.populate(layout, 0)
	g.present()
	g.log.WithFields(logrus.Fields{"architect": layout.Architect, "theme": layout.Theme, "attempts": layout.Attempts}).Info("run started")
	return nil
}

// generate builds a dungeon for level; shallower levels get an exit where the amulet would lie
func (g *Game) generate(level int) (*dungeon.Result, error) {
	layout, err := dungeon.Build(g.rng, dungeon.DefaultConfig(g.cfg.Width, g.cfg.Height))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", level, err)
	}
	if level < g.cfg.FinalLevel {
		layout.PlaceExit()
	}
	return layout, nil
}

// descend keeps the player and everything it carries, discards the rest and regenerates
func (g *Game) descend() error {
	next := g.res.Level + 1
	layout, err := g.generate(next)
	if err != nil {
		g.log.WithError(err).Error("level generation failed, staying on current level")
		return err
	}

	player := g.world.Player()
	keep := map[core.Entity]bool{player: true}
	for _, e := range g.world.CarriedBy(player) {
		keep[e] = true
	}
	for _, e := range g.world.Entities() {
		if !keep[e] {
			g.world.DestroyEntity(e)
		}
	}

	g.layout = layout
	g.res.Map = layout.Map
	g.res.Theme = layout.Theme
	g.res.Level = next
	g.res.Distance.Resize(layout.Map.Width, layout.Map.Height)
	g.world.Positions.Move(player, layout.PlayerStart)
	engine.MarkAllFOVDirty(g.world)

	g.populate(layout, next)
	g.res.SetTurn(engine.AwaitingInput)
	g.res.Messages.Add(fmt.Sprintf("You descend to depth %d", next+1))
	g.log.WithFields(logrus.Fields{"level": next, "architect": layout.Architect, "theme": layout.Theme}).Info("level changed")
	return nil
}

func (g *Game) populate(layout *dungeon.Result, level int) {
	player := g.world.Player()
	pos, _ := g.world.Positions.At(player)
	g.res.Camera = engine.NewCamera(pos, parameter.CameraViewWidth, parameter.CameraViewHeight)

	if level >= g.cfg.FinalLevel {
		spawner.SpawnAmulet(g.world, layout.AmuletStart)
	}
	n := spawner.SpawnLevel(g.world, layout.Map, g.rng, g.templates, level, layout.MonsterSpawns, g.log)
	g.log.WithFields(logrus.Fields{"level": level, "spawned": n}).Debug("level populated")
}

// present redraws without advancing the turn
func (g *Game) present() {
	g.res.Draw.Reset()
	for _, stage := range g.refresh {
		for _, sys := range stage.Systems {
			sys.Update(g.world, g.res)
		}
		g.res.Flush(g.world)
	}
}

// Package render defines the draw command batch the simulation emits each tick
package render

import "github.com/lixenwraith/vi-crawler/core"

// Layer names a host-side draw target, presented in declaration order
type Layer uint8

const (
	LayerMap Layer = iota
	LayerActors
	LayerHUD
	LayerCount
)

func (l Layer) String() string {
	switch l {
	case LayerMap:
		return "map"
	case LayerActors:
		return "actors"
	case LayerHUD:
		return "hud"
	}
	return "unknown"
}

// CommandKind distinguishes cell writes from text runs
type CommandKind uint8

const (
	CommandSet CommandKind = iota
	CommandPrint
)

// Command is one ordered draw instruction in screen coordinates
type Command struct {
	Kind  CommandKind
	Pos   core.Point
	Fg    core.RGB
	Bg    core.RGB
	Glyph rune   // CommandSet only
	Text  string // CommandPrint only
}

// Batch collects one tick of commands, ordered per layer
type Batch struct {
	layers [LayerCount][]Command
}

// NewBatch returns an empty batch
func NewBatch() *Batch {
	return &Batch{}
}

// Set appends a single-cell write
func (b *Batch) Set(l Layer, pos core.Point, fg, bg core.RGB, glyph rune) {
	b.layers[l] = append(b.layers[l], Command{Kind: CommandSet, Pos: pos, Fg: fg, Bg: bg, Glyph: glyph})
}

// Print appends a text run starting at pos
func (b *Batch) Print(l Layer, pos core.Point, text string, fg core.RGB) {
	b.layers[l] = append(b.layers[l], Command{Kind: CommandPrint, Pos: pos, Fg: fg, Bg: core.RGBBlack, Text: text})
}

// Layer returns the ordered commands of one layer
func (b *Batch) Layer(l Layer) []Command {
	return b.layers[l]
}

// Len returns the total command count
func (b *Batch) Len() int {
	n := 0
	for _, cmds := range b.layers {
		n += len(cmds)
	}
	return n
}

// Reset empties every layer keeping capacity
func (b *Batch) Reset() {
	for i := range b.layers {
		b.layers[i] = b.layers[i][:0]
	}
}

// Clone returns an independent copy, for sinks that present asynchronously
func (b *Batch) Clone() *Batch {
	c := &Batch{}
	for i, cmds := range b.layers {
		c.layers[i] = append([]Command(nil), cmds...)
	}
	return c
}

// Sink presents a finished batch; the host owns clearing and flipping
type Sink interface {
	Present(b *Batch) error
}

// MultiSink fans one batch out to several sinks, stopping at the first error
type MultiSink []Sink

func (m MultiSink) Present(b *Batch) error {
	for _, s := range m {
		if err := s.Present(b); err != nil {
			return err
		}
	}
	return nil
}

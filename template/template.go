// Package template loads entity archetypes keyed by dungeon level
package template

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-crawler/core"
)

//go:embed templates.toml
var defaultTemplates []byte

// Kind separates hostile actors from pickable objects
type Kind uint8

const (
	KindEnemy Kind = iota
	KindItem
)

func (k Kind) String() string {
	if k == KindItem {
		return "Item"
	}
	return "Enemy"
}

// Behavior selects the AI attached to an enemy
type Behavior uint8

const (
	BehaviorChase Behavior = iota
	BehaviorRandom
)

// Effect is one (effect-name, magnitude) grant, e.g. Healing 6 or MagicMap 0
type Effect struct {
	Name   string
	Amount int
}

// Template is a validated, read-only entity archetype
type Template struct {
	Kind       Kind
	Levels     map[int]bool
	Frequency  int
	Name       string
	Glyph      rune
	Behavior   Behavior
	HP         *int
	BaseDamage *int
	Provides   []Effect
}

// ValidAt reports whether the template may appear on level
func (t *Template) ValidAt(level int) bool {
	return t.Levels[level]
}

// Templates is the full set consumed once per level transition
type Templates struct {
	Entities []Template
}

// raw mirrors the document layout before validation
type rawEffect struct {
	Name   string `toml:"name"`
	Amount int    `toml:"amount"`
}

type rawTemplate struct {
	EntityType string      `toml:"entity_type"`
	Levels     []int       `toml:"levels"`
	Frequency  int         `toml:"frequency"`
	Name       string      `toml:"name"`
	Glyph      string      `toml:"glyph"`
	AI         string      `toml:"ai"`
	HP         *int        `toml:"hp"`
	BaseDamage *int        `toml:"base_damage"`
	Provides   []rawEffect `toml:"provides"`
}

type rawDocument struct {
	Entities []rawTemplate `toml:"entities"`
}

// Default returns the embedded template set
func Default() (*Templates, error) {
	return Parse(defaultTemplates)
}

// Load reads and parses a template file
func Load(path string) (*Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.TemplateParseError{Index: -1, Err: err}
	}
	return Parse(data)
}

// Parse decodes and validates a template document
// Any malformed record fails the whole load with a TemplateParseError
func Parse(data []byte) (*Templates, error) {
	var doc rawDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, &core.TemplateParseError{Index: -1, Err: err}
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return nil, &core.TemplateParseError{Index: -1, Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}
	if len(doc.Entities) == 0 {
		return nil, &core.TemplateParseError{Index: -1, Err: errors.New("no entities defined")}
	}

	out := &Templates{Entities: make([]Template, 0, len(doc.Entities))}
	for i, raw := range doc.Entities {
		tpl, err := validate(i, raw)
		if err != nil {
			return nil, err
		}
		out.Entities = append(out.Entities, tpl)
	}
	return out, nil
}

func validate(i int, raw rawTemplate) (Template, error) {
	fail := func(field string, format string, args ...any) (Template, error) {
		return Template{}, &core.TemplateParseError{Index: i, Field: field, Err: fmt.Errorf(format, args...)}
	}

	tpl := Template{
		Frequency:  raw.Frequency,
		Name:       raw.Name,
		HP:         raw.HP,
		BaseDamage: raw.BaseDamage,
		Levels:     make(map[int]bool, len(raw.Levels)),
	}

	switch raw.EntityType {
	case "Enemy":
		tpl.Kind = KindEnemy
	case "Item":
		tpl.Kind = KindItem
	default:
		return fail("entity_type", "unknown entity type %q", raw.EntityType)
	}

	if raw.Name == "" {
		return fail("name", "empty name")
	}
	if utf8.RuneCountInString(raw.Glyph) != 1 {
		return fail("glyph", "glyph must be exactly one character, got %q", raw.Glyph)
	}
	tpl.Glyph, _ = utf8.DecodeRuneInString(raw.Glyph)

	if raw.Frequency < 1 {
		return fail("frequency", "frequency must be positive, got %d", raw.Frequency)
	}
	if len(raw.Levels) == 0 {
		return fail("levels", "no levels listed")
	}
	for _, l := range raw.Levels {
		if l < 0 {
			return fail("levels", "negative level %d", l)
		}
		tpl.Levels[l] = true
	}

	switch raw.AI {
	case "", "chase":
		tpl.Behavior = BehaviorChase
	case "random":
		tpl.Behavior = BehaviorRandom
	default:
		return fail("ai", "unknown ai %q", raw.AI)
	}

	if tpl.Kind == KindEnemy && (raw.HP == nil || *raw.HP < 1) {
		return fail("hp", "enemies need positive hp")
	}
	if raw.BaseDamage != nil && *raw.BaseDamage < 0 {
		return fail("base_damage", "negative damage %d", *raw.BaseDamage)
	}

	for _, p := range raw.Provides {
		if p.Name == "" {
			return fail("provides", "effect without name")
		}
		tpl.Provides = append(tpl.Provides, Effect{Name: p.Name, Amount: p.Amount})
	}
	return tpl, nil
}

// ForLevel expands templates valid at level by frequency into a weighted pick list
func (ts *Templates) ForLevel(level int) []*Template {
	var pool []*Template
	for i := range ts.Entities {
		t := &ts.Entities[i]
		if !t.ValidAt(level) {
			continue
		}
		for n := 0; n < t.Frequency; n++ {
			pool = append(pool, t)
		}
	}
	return pool
}

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailure means no connected dungeon was produced within the retry budget
	ErrGenerationFailure = errors.New("dungeon generation failed")
	// ErrMissingComponent flags a corrupted entity graph
	ErrMissingComponent = errors.New("missing required component")
	// ErrInvalidSpawnPoint is recovered locally by skipping the spawn
	ErrInvalidSpawnPoint = errors.New("invalid spawn point")
	// ErrTemplateParse rejects malformed template data at load time
	ErrTemplateParse = errors.New("template parse error")
)

// MissingComponentError names the entity and the component a system required
type MissingComponentError struct {
	Entity    Entity
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("%v: %s on %v", ErrMissingComponent, e.Component, e.Entity)
}

func (e *MissingComponentError) Unwrap() error { return ErrMissingComponent }

// MustHave panics with MissingComponentError when ok is false
// Per-tick invariant violations are bugs, never player-facing conditions
func MustHave(ok bool, e Entity, component string) {
	if !ok {
		panic(&MissingComponentError{Entity: e, Component: component})
	}
}

// TemplateParseError locates a malformed template record
type TemplateParseError struct {
	Index int    // Record index in file order, -1 for document-level failures
	Field string // Offending field, empty for document-level failures
	Err   error
}

func (e *TemplateParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %v", ErrTemplateParse, e.Err)
	}
	return fmt.Sprintf("%v: entity %d field %q: %v", ErrTemplateParse, e.Index, e.Field, e.Err)
}

func (e *TemplateParseError) Unwrap() []error { return []error{ErrTemplateParse, e.Err} }

// InvalidSpawnError reports the rejected spawn target
type InvalidSpawnError struct {
	Point Point
}

func (e *InvalidSpawnError) Error() string {
	return fmt.Sprintf("%v: (%d,%d)", ErrInvalidSpawnPoint, e.Point.X, e.Point.Y)
}

func (e *InvalidSpawnError) Unwrap() error { return ErrInvalidSpawnPoint }

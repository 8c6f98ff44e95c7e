package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomyUnwraps(t *testing.T) {
	inner := fmt.Errorf("bad frequency")
	tpe := &TemplateParseError{Index: 2, Field: "frequency", Err: inner}
	if !errors.Is(tpe, ErrTemplateParse) {
		t.Error("TemplateParseError should match ErrTemplateParse")
	}
	if !errors.Is(tpe, inner) {
		t.Error("TemplateParseError should match its cause")
	}

	wrapped := fmt.Errorf("level 2: %w", &InvalidSpawnError{Point: Pt(1, 1)})
	if !errors.Is(wrapped, ErrInvalidSpawnPoint) {
		t.Error("wrapped InvalidSpawnError should match ErrInvalidSpawnPoint")
	}
}

func TestMustHavePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingComponent) {
			t.Fatalf("expected MissingComponentError panic, got %v", r)
		}
	}()
	MustHave(false, NewEntity(1, 1), "Health")
}

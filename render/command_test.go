package render

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/core"
)

func TestBatchOrderPerLayer(t *testing.T) {
	b := NewBatch()
	b.Set(LayerActors, core.Pt(1, 1), core.RGBWhite, core.RGBBlack, '@')
	b.Set(LayerMap, core.Pt(0, 0), core.RGBGray, core.RGBBlack, '#')
	b.Set(LayerActors, core.Pt(2, 1), core.RGBRed, core.RGBBlack, 'g')
	b.Print(LayerHUD, core.Pt(0, 0), "HP 10/10", core.RGBWhite)

	actors := b.Layer(LayerActors)
	if len(actors) != 2 || actors[0].Glyph != '@' || actors[1].Glyph != 'g' {
		t.Fatalf("actor commands out of order: %+v", actors)
	}
	if b.Len() != 4 {
		t.Errorf("expected 4 commands, got %d", b.Len())
	}

	c := b.Clone()
	b.Reset()
	if b.Len() != 0 {
		t.Error("reset must empty the batch")
	}
	if c.Len() != 4 || c.Layer(LayerHUD)[0].Text != "HP 10/10" {
		t.Error("clone must survive reset of the original")
	}
}

type countingSink struct{ n int }

func (c *countingSink) Present(*Batch) error {
	c.n++
	return nil
}

func TestMultiSink(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	if err := (MultiSink{a, b}).Present(NewBatch()); err != nil {
		t.Fatal(err)
	}
	if a.n != 1 || b.n != 1 {
		t.Errorf("each sink must see the batch once, got %d and %d", a.n, b.n)
	}
}

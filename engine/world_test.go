package engine

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
)

func TestStaleHandleDetected(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.Components.Health.Set(a, component.HealthComponent{Current: 3, Max: 3})

	if !w.DestroyEntity(a) {
		t.Fatal("destroying a live entity must succeed")
	}
	if w.Components.Health.Has(a) {
		t.Error("destroy must remove components")
	}

	b := w.CreateEntity()
	if b.Index() != a.Index() {
		t.Fatalf("expected slot reuse, got %v after %v", b, a)
	}
	if w.Alive(a) {
		t.Error("stale handle must not be alive after slot reuse")
	}
	if !w.Alive(b) {
		t.Error("new occupant must be alive")
	}
	if w.DestroyEntity(a) {
		t.Error("destroying a stale handle must be a no-op")
	}
	if !w.Alive(b) {
		t.Error("stale destroy must not affect the new occupant")
	}
}

func TestNullEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	if w.Alive(core.NullEntity) {
		t.Error("null entity reported alive")
	}
	if e := w.CreateEntity(); e == core.NullEntity {
		t.Error("CreateEntity returned the null entity")
	}
}

func TestDestroyClearsSpatialIndex(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	p := core.Pt(4, 2)
	w.Positions.Move(e, p)
	w.Components.Health.Set(e, component.HealthComponent{Current: 1, Max: 1})

	if got, ok := w.ActorAt(p); !ok || got != e {
		t.Fatalf("ActorAt = %v,%v", got, ok)
	}
	w.DestroyEntity(e)
	if len(w.Positions.EntitiesAt(p)) != 0 {
		t.Error("spatial index must be cleaned on destroy")
	}
}

func TestPositionStoreMoveReindexes(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Positions.Move(e, core.Pt(1, 1))
	w.Positions.Move(e, core.Pt(2, 1))

	if len(w.Positions.EntitiesAt(core.Pt(1, 1))) != 0 {
		t.Error("old tile must be vacated")
	}
	if at := w.Positions.EntitiesAt(core.Pt(2, 1)); len(at) != 1 || at[0] != e {
		t.Errorf("new tile should hold the entity, got %v", at)
	}
}

func TestCarriedBy(t *testing.T) {
	w := NewWorld()
	owner := w.CreateEntity()
	other := w.CreateEntity()
	sword := w.CreateEntity()
	potion := w.CreateEntity()
	w.Components.Carried.Set(sword, component.CarriedComponent{By: owner})
	w.Components.Carried.Set(potion, component.CarriedComponent{By: other})

	got := w.CarriedBy(owner)
	if len(got) != 1 || got[0] != sword {
		t.Errorf("CarriedBy = %v, want [%v]", got, sword)
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	es := []core.Entity{core.NewEntity(3, 1), core.NewEntity(1, 1), core.NewEntity(2, 1)}
	for i, e := range es {
		s.Set(e, i)
	}
	s.Remove(es[1])
	all := s.All()
	if len(all) != 2 || all[0] != es[0] || all[1] != es[2] {
		t.Errorf("removal must preserve order, got %v", all)
	}
	s.Set(es[0], 42) // Update keeps position
	if first, _ := s.First(); first != es[0] {
		t.Errorf("update must not reorder, first = %v", first)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewStore[component.HealthComponent]().MustGet(core.NewEntity(1, 1), "Health")
}

package spawner

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/template"
)

const testTemplates = `
[[entities]]
entity_type = "Enemy"
name = "Goblin"
glyph = "g"
levels = [0]
frequency = 1
hp = 3
base_damage = 1

[[entities]]
entity_type = "Item"
name = "Sword"
glyph = "/"
levels = [1]
frequency = 1
base_damage = 2

[[entities]]
entity_type = "Item"
name = "Potion"
glyph = "!"
levels = [2]
frequency = 1
provides = [{ name = "Healing", amount = 6 }, { name = "Teleport", amount = 1 }]

[[entities]]
entity_type = "Enemy"
name = "Bat"
glyph = "b"
levels = [3]
frequency = 1
ai = "random"
hp = 1
`

func openMap(w, h int) *dungeon.Map {
	m := dungeon.NewMap(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(core.Pt(x, y), dungeon.Floor)
		}
	}
	return m
}

func mustTemplates(t *testing.T) *template.Templates {
	t.Helper()
	ts, err := template.Parse([]byte(testTemplates))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return ts
}

func TestSpawnPlayer(t *testing.T) {
	w := engine.NewWorld()
	e := SpawnPlayer(w, core.Pt(2, 3))

	if w.Player() != e {
		t.Fatal("player lookup mismatch")
	}
	if p, _ := w.Positions.At(e); p != core.Pt(2, 3) {
		t.Errorf("player at %v", p)
	}
	hp, ok := w.Components.Health.Get(e)
	if !ok || hp.Current != hp.Max || hp.Max == 0 {
		t.Errorf("unexpected health %+v", hp)
	}
	if fov, _ := w.Components.FOV.Get(e); !fov.Dirty {
		t.Error("fresh FOV should be dirty")
	}
}

func TestSpawnTemplateComponents(t *testing.T) {
	ts := mustTemplates(t)
	w := engine.NewWorld()

	goblin := SpawnTemplate(w, &ts.Entities[0], core.Pt(1, 1), nil)
	if !w.Components.Enemy.Has(goblin) || !w.Components.Chasing.Has(goblin) {
		t.Error("goblin should be a chasing enemy")
	}
	if hp, _ := w.Components.Health.Get(goblin); hp.Current != 3 {
		t.Errorf("goblin hp %d", hp.Current)
	}
	if w.Components.Weapon.Has(goblin) {
		t.Error("enemy damage must not make a weapon")
	}

	sword := SpawnTemplate(w, &ts.Entities[1], core.Pt(2, 1), nil)
	if !w.Components.Item.Has(sword) || !w.Components.Weapon.Has(sword) {
		t.Error("sword should be a weapon item")
	}
	if dmg, _ := w.Components.Damage.Get(sword); dmg.Amount != 2 {
		t.Errorf("sword damage %d", dmg.Amount)
	}

	potion := SpawnTemplate(w, &ts.Entities[2], core.Pt(3, 1), nil)
	if heal, ok := w.Components.Healing.Get(potion); !ok || heal.Amount != 6 {
		t.Errorf("potion healing %+v", heal)
	}
	if w.Components.Health.Has(potion) {
		t.Error("items have no health")
	}

	bat := SpawnTemplate(w, &ts.Entities[3], core.Pt(4, 1), nil)
	if !w.Components.Random.Has(bat) || w.Components.Chasing.Has(bat) {
		t.Error("bat should wander")
	}
}

func TestSpawnLevelSkipsInvalidPoints(t *testing.T) {
	ts := mustTemplates(t)
	m := openMap(10, 10)
	w := engine.NewWorld()

	points := []core.Point{core.Pt(2, 2), core.Pt(0, 0), core.Pt(-1, 4), core.Pt(5, 5)}
	n := SpawnLevel(w, m, rand.New(rand.NewSource(1)), ts, 0, points, nil)
	if n != 2 {
		t.Fatalf("spawned %d, want 2", n)
	}
	if w.Components.Enemy.Count() != 2 {
		t.Errorf("enemy count %d", w.Components.Enemy.Count())
	}
	if len(w.Positions.EntitiesAt(core.Pt(0, 0))) != 0 {
		t.Error("entity placed on a wall")
	}
}

func TestSpawnLevelRespectsLevels(t *testing.T) {
	ts := mustTemplates(t)
	m := openMap(10, 10)
	w := engine.NewWorld()

	SpawnLevel(w, m, rand.New(rand.NewSource(1)), ts, 1, []core.Point{core.Pt(2, 2), core.Pt(3, 3)}, nil)
	if w.Components.Enemy.Count() != 0 || w.Components.Weapon.Count() != 2 {
		t.Errorf("level 1 should only hold swords, enemies=%d weapons=%d",
			w.Components.Enemy.Count(), w.Components.Weapon.Count())
	}

	if n := SpawnLevel(w, m, rand.New(rand.NewSource(1)), ts, 9, []core.Point{core.Pt(4, 4)}, nil); n != 0 {
		t.Errorf("level without templates spawned %d", n)
	}
}

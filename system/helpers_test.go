package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/spawner"
)

// arena is a walled open room with the player placed at start
type arena struct {
	w      *engine.World
	res    *engine.Resources
	player core.Entity
}

func newArena(t *testing.T, width, height int, start core.Point) *arena {
	t.Helper()
	m := dungeon.NewMap(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.SetTile(core.Pt(x, y), dungeon.Floor)
		}
	}
	w := engine.NewWorld()
	res := engine.NewResources(m, rand.New(rand.NewSource(7)), nil)
	res.Camera = engine.NewCamera(start, width, height)
	return &arena{w: w, res: res, player: spawner.SpawnPlayer(w, start)}
}

func (a *arena) enemy(p core.Point, hp int, chasing bool) core.Entity {
	e := a.w.CreateEntity()
	a.w.Positions.Move(e, p)
	a.w.Components.Enemy.Set(e, component.EnemyComponent{})
	a.w.Components.Health.Set(e, component.HealthComponent{Current: hp, Max: hp})
	a.w.Components.FOV.Set(e, component.NewFieldOfView(6))
	a.w.Components.Name.Set(e, component.NameComponent{Name: "Orc"})
	a.w.Components.Damage.Set(e, component.DamageComponent{Amount: 1})
	if chasing {
		a.w.Components.Chasing.Set(e, component.ChasingPlayerComponent{})
	}
	return e
}

func (a *arena) item(p core.Point) core.Entity {
	e := a.w.CreateEntity()
	a.w.Positions.Move(e, p)
	a.w.Components.Item.Set(e, component.ItemComponent{})
	a.w.Components.Name.Set(e, component.NameComponent{Name: "Thing"})
	return e
}

func (a *arena) weapon(by core.Entity, damage int) core.Entity {
	e := a.w.CreateEntity()
	a.w.Components.Item.Set(e, component.ItemComponent{})
	a.w.Components.Weapon.Set(e, component.WeaponComponent{})
	a.w.Components.Damage.Set(e, component.DamageComponent{Amount: damage})
	a.w.Components.Carried.Set(e, component.CarriedComponent{By: by})
	return e
}

// run executes systems in order with a flush after each, like single-system stages
func (a *arena) run(systems ...engine.System) {
	for _, s := range systems {
		s.Update(a.w, a.res)
		a.res.Flush(a.w)
	}
}

// tick runs one scheduler tick with key
func (a *arena) tick(s *engine.Scheduler, key input.Key) string {
	a.res.SetInput(key)
	return s.Tick(a.w, a.res)
}

func (a *arena) pos(e core.Entity) core.Point {
	p, _ := a.w.Positions.At(e)
	return p
}

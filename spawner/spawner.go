// Package spawner materializes entities from dungeon output and level templates
package spawner

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/template"
)

// Effect names understood by the item systems
const (
	EffectHealing  = "Healing"
	EffectMagicMap = "MagicMap"
)

// SpawnPlayer creates the player actor at p
func SpawnPlayer(w *engine.World, p core.Point) core.Entity {
	e := w.CreateEntity()
	w.Positions.Move(e, p)
	w.Components.Player.Set(e, component.PlayerComponent{})
	w.Components.Health.Set(e, component.HealthComponent{Current: parameter.PlayerHitPoints, Max: parameter.PlayerHitPoints})
	w.Components.FOV.Set(e, component.NewFieldOfView(parameter.PlayerFOVRadius))
	w.Components.Render.Set(e, component.RenderComponent{Glyph: parameter.PlayerGlyph, Fg: core.RGBYellow, Bg: core.RGBBlack})
	w.Components.Name.Set(e, component.NameComponent{Name: "Player"})
	w.Components.Damage.Set(e, component.DamageComponent{Amount: 1})
	return e
}

// SpawnAmulet places the win-condition item at p
func SpawnAmulet(w *engine.World, p core.Point) core.Entity {
	e := w.CreateEntity()
	w.Positions.Move(e, p)
	w.Components.Item.Set(e, component.ItemComponent{})
	w.Components.Amulet.Set(e, component.AmuletComponent{})
	w.Components.Render.Set(e, component.RenderComponent{Glyph: '|', Fg: core.RGBGreen, Bg: core.RGBBlack})
	w.Components.Name.Set(e, component.NameComponent{Name: "Amulet of Yala"})
	return e
}

// SpawnTemplate builds one entity from tpl at p
func SpawnTemplate(w *engine.World, tpl *template.Template, p core.Point, log *logrus.Entry) core.Entity {
	e := w.CreateEntity()
	w.Positions.Move(e, p)
	w.Components.Name.Set(e, component.NameComponent{Name: tpl.Name})

	switch tpl.Kind {
	case template.KindEnemy:
		w.Components.Enemy.Set(e, component.EnemyComponent{})
		w.Components.FOV.Set(e, component.NewFieldOfView(parameter.EnemyFOVRadius))
		w.Components.Health.Set(e, component.HealthComponent{Current: *tpl.HP, Max: *tpl.HP})
		if tpl.Behavior == template.BehaviorRandom {
			w.Components.Random.Set(e, component.MovingRandomlyComponent{})
		} else {
			w.Components.Chasing.Set(e, component.ChasingPlayerComponent{})
		}
		w.Components.Render.Set(e, component.RenderComponent{Glyph: tpl.Glyph, Fg: core.RGBRed, Bg: core.RGBBlack})
	case template.KindItem:
		w.Components.Item.Set(e, component.ItemComponent{})
		fg := core.RGBYellow
		if tpl.BaseDamage != nil {
			fg = core.RGBCyan
		}
		w.Components.Render.Set(e, component.RenderComponent{Glyph: tpl.Glyph, Fg: fg, Bg: core.RGBBlack})
	}

	if tpl.BaseDamage != nil {
		w.Components.Damage.Set(e, component.DamageComponent{Amount: *tpl.BaseDamage})
		if tpl.Kind == template.KindItem {
			w.Components.Weapon.Set(e, component.WeaponComponent{})
		}
	}

	for _, fx := range tpl.Provides {
		switch fx.Name {
		case EffectHealing:
			w.Components.Healing.Set(e, component.ProvidesHealingComponent{Amount: fx.Amount})
		case EffectMagicMap:
			w.Components.DungeonMap.Set(e, component.ProvidesDungeonMapComponent{})
		default:
			if log != nil {
				log.WithFields(logrus.Fields{"template": tpl.Name, "effect": fx.Name}).Warn("unknown effect ignored")
			}
		}
	}
	return e
}

// SpawnLevel fills points with templates valid at level, weighted by frequency
// Points that cannot be entered are skipped; returns the number of entities created
func SpawnLevel(w *engine.World, m *dungeon.Map, rng *rand.Rand, ts *template.Templates, level int, points []core.Point, log *logrus.Entry) int {
	pool := ts.ForLevel(level)
	if len(pool) == 0 {
		if log != nil {
			log.WithField("level", level).Warn("no templates for level")
		}
		return 0
	}

	spawned := 0
	for _, p := range points {
		if err := checkSpawn(m, p); err != nil {
			if log != nil {
				log.WithError(err).Debug("spawn skipped")
			}
			continue
		}
		SpawnTemplate(w, pool[rng.Intn(len(pool))], p, log)
		spawned++
	}
	return spawned
}

func checkSpawn(m *dungeon.Map, p core.Point) error {
	if !m.CanEnter(p) {
		return &core.InvalidSpawnError{Point: p}
	}
	return nil
}

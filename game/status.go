package game

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/systems"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
)

// Status is a read-only summary of the director for HUDs and sessions.
type Status struct {
	State         string
	LevelIndex    int
	LevelName     string
	Survival      bool
	Kills         int
	AliveRegulars int
	Projectiles   int
	BossDefeated  bool
	Boss          *BossStatus

	SurvivalElapsed float64
	SurvivalWaves   int
}

type BossStatus struct {
	TypeID    string
	Name      string
	Health    float64
	MaxHealth float64
	Phase     int
	Dead      bool
}

func (e *Engine) Status() Status {
	w := e.ecs.World
	enc := components.GetEncounter(w)

	s := Status{
		State:           enc.FSM.Current(),
		LevelIndex:      enc.LevelIndex,
		Survival:        enc.Survival,
		Kills:           enc.Kills,
		AliveRegulars:   systems.AliveRegulars(w),
		BossDefeated:    enc.BossDefeated,
		SurvivalElapsed: enc.SurvivalElapsed,
		SurvivalWaves:   enc.SurvivalWaves,
	}
	if enc.Level != nil {
		s.LevelName = enc.Level.Name
	}
	tags.Projectile.Each(w, func(*donburi.Entry) {
		s.Projectiles++
	})
	if enc.Boss != nil && enc.Boss.Valid() {
		c := components.Combatant.Get(enc.Boss)
		b := components.Boss.Get(enc.Boss)
		s.Boss = &BossStatus{
			TypeID:    b.TypeID,
			Name:      c.TypeName,
			Health:    c.Health,
			MaxHealth: c.MaxHealth,
			Phase:     b.Phase,
			Dead:      c.Dead,
		}
	}
	return s
}

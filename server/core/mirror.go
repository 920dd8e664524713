package core

import (
	"fmt"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/session"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// Kind selects which network components a mirrored entity carries.
type Kind int

const (
	KindCombatant Kind = iota
	KindProjectile
	KindPlayer
	KindEncounter
)

// Tracker marks a freshly created mirror entity for network sync.
type Tracker interface {
	Track(w donburi.World, entity *donburi.Entity, kind Kind) error
}

type esyncTracker struct{}

func (esyncTracker) Track(w donburi.World, entity *donburi.Entity, kind Kind) error {
	switch kind {
	case KindCombatant:
		return srvsync.NetworkSync(w, entity, srvsync.WithInterp(netcomponents.NetCombatant))
	case KindProjectile:
		return srvsync.NetworkSync(w, entity, srvsync.WithInterp(netcomponents.NetProjectile))
	case KindPlayer:
		return srvsync.NetworkSync(w, entity, srvsync.WithInterp(netcomponents.NetPlayer))
	case KindEncounter:
		return srvsync.NetworkSync(w, entity, netcomponents.NetEncounter)
	}
	return fmt.Errorf("unknown mirror kind %d", kind)
}

// Mirror copies engine state into a separate world of network components.
// Engine entities map one to one onto mirror entities; mirror entities whose
// source is gone are removed on the next Update.
type Mirror struct {
	world   donburi.World
	tracker Tracker

	entities  map[donburi.Entity]donburi.Entity
	player    donburi.Entity
	encounter donburi.Entity
}

func NewMirror(world donburi.World, tracker Tracker) *Mirror {
	return &Mirror{
		world:    world,
		tracker:  tracker,
		entities: make(map[donburi.Entity]donburi.Entity),
	}
}

// Len returns the number of mirrored combatants and projectiles.
func (m *Mirror) Len() int {
	return len(m.entities)
}

// Update refreshes every mirrored entity from the engine and the session.
func (m *Mirror) Update(engine *game.Engine, ledger *session.Ledger) error {
	w := engine.World()
	seen := make(map[donburi.Entity]struct{}, len(m.entities))

	var err error
	components.Combatant.Each(w, func(e *donburi.Entry) {
		if err != nil {
			return
		}
		var entry *donburi.Entry
		if entry, err = m.upsert(e.Entity(), netcomponents.NetCombatant, KindCombatant); err != nil {
			return
		}
		seen[e.Entity()] = struct{}{}
		netcomponents.NetCombatant.SetValue(entry, combatantState(engine, e))
	})
	if err != nil {
		return err
	}

	components.Projectile.Each(w, func(e *donburi.Entry) {
		if err != nil {
			return
		}
		var entry *donburi.Entry
		if entry, err = m.upsert(e.Entity(), netcomponents.NetProjectile, KindProjectile); err != nil {
			return
		}
		seen[e.Entity()] = struct{}{}
		p := components.Projectile.Get(e)
		netcomponents.NetProjectile.SetValue(entry, netcomponents.NetProjectileData{
			X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
			VelX: p.Velocity.X, VelY: p.Velocity.Y, VelZ: p.Velocity.Z,
			Side:    int(p.Side),
			Element: string(p.Element),
		})
	})
	if err != nil {
		return err
	}

	for src, dst := range m.entities {
		if _, ok := seen[src]; ok {
			continue
		}
		if m.world.Valid(dst) {
			m.world.Remove(dst)
		}
		delete(m.entities, src)
	}

	if err := m.updatePlayer(engine, ledger); err != nil {
		return err
	}
	return m.updateEncounter(engine, ledger)
}

func (m *Mirror) upsert(src donburi.Entity, c donburi.IComponentType, kind Kind) (*donburi.Entry, error) {
	if dst, ok := m.entities[src]; ok && m.world.Valid(dst) {
		return m.world.Entry(dst), nil
	}
	dst, err := m.create(c, kind)
	if err != nil {
		return nil, err
	}
	m.entities[src] = dst
	return m.world.Entry(dst), nil
}

func (m *Mirror) create(c donburi.IComponentType, kind Kind) (donburi.Entity, error) {
	entity := m.world.Create(c)
	if err := m.tracker.Track(m.world, &entity, kind); err != nil {
		m.world.Remove(entity)
		return 0, fmt.Errorf("network sync: %w", err)
	}
	return entity, nil
}

func combatantState(engine *game.Engine, e *donburi.Entry) netcomponents.NetCombatantData {
	c := components.Combatant.Get(e)
	out := netcomponents.NetCombatantData{
		X:         c.LastPosition.X,
		Z:         c.LastPosition.Z,
		Yaw:       c.Yaw,
		TypeName:  c.TypeName,
		Health:    c.Health,
		MaxHealth: c.MaxHealth,
		Awareness: int(c.Awareness),
		Dead:      c.Dead,
		Scale:     1,
	}
	if pos, ok := engine.Provider().Position(components.Body.Get(e).ID); ok {
		out.X, out.Z = pos.X, pos.Z
	}
	if e.HasComponent(components.Boss) {
		b := components.Boss.Get(e)
		out.Boss = true
		out.Phase = b.Phase
		out.Scale = b.Type.Scale
	}
	return out
}

func (m *Mirror) updatePlayer(engine *game.Engine, ledger *session.Ledger) error {
	if !m.world.Valid(m.player) {
		e, err := m.create(netcomponents.NetPlayer, KindPlayer)
		if err != nil {
			return err
		}
		m.player = e
	}

	ars := engine.Arsenal()
	state := netcomponents.NetPlayerData{
		Yaw:       gamemath.Yaw(ars.Forward),
		Health:    ledger.Health,
		MaxHealth: ledger.MaxHealth,
		Magazine:  ars.CurrentMagazine,
		Reserve:   ars.Reserve[ars.Selected],
		Reloading: ars.IsReloading,
		Element:   string(ars.Loaded),
	}
	if pos, ok := engine.PlayerPosition(); ok {
		state.X, state.Z = pos.X, pos.Z
	}
	netcomponents.NetPlayer.SetValue(m.world.Entry(m.player), state)
	return nil
}

func (m *Mirror) updateEncounter(engine *game.Engine, ledger *session.Ledger) error {
	if !m.world.Valid(m.encounter) {
		e, err := m.create(netcomponents.NetEncounter, KindEncounter)
		if err != nil {
			return err
		}
		m.encounter = e
	}

	st := engine.Status()
	state := netcomponents.NetEncounterData{
		State:     st.State,
		Level:     st.LevelIndex,
		LevelName: st.LevelName,
		Survival:  st.Survival,
		Elapsed:   st.SurvivalElapsed,
		Kills:     st.Kills,
		Alive:     st.AliveRegulars,
		Score:     ledger.Score,
		Coins:     ledger.Coins,
		Rank:      ledger.Rank(),
	}
	if n := len(ledger.Narration); n > 0 {
		state.Narration = ledger.Narration[n-1]
	}
	netcomponents.NetEncounter.SetValue(m.world.Entry(m.encounter), state)
	return nil
}

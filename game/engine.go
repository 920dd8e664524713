package game

import (
	"fmt"
	"math/rand"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new Engine. Zero values pick the defaults: the built
// in tuning tables, a resolv physics world and no-op hooks.
type Options struct {
	Config      *config.Config
	Provider    physics.Provider
	Hooks       components.Hooks
	Controls    components.Controls
	Aim         components.AimProvider
	Seed        int64
	PlayerSpawn gamemath.Vec3
}

// Engine is one encounter and combat simulation. It is not safe for
// concurrent use; drive it from a single goroutine.
type Engine struct {
	ecs      *ecs.ECS
	cfg      *config.Config
	provider physics.Provider
	player   *donburi.Entry
}

func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	provider := opts.Provider
	if provider == nil {
		provider = physics.NewWorld(cfg.Physics.Extent, cfg.Physics.CellSize)
	}

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateEnvironment(w, cfg, provider, rand.New(rand.NewSource(opts.Seed)), components.CollaboratorsData{
		Hooks:    opts.Hooks,
		Controls: opts.Controls,
		Aim:      opts.Aim,
	})
	factory.CreateEncounter(w)
	player := factory.CreatePlayer(w, opts.PlayerSpawn)

	// Tick order: physics, combatant AI, reap and score, player combat,
	// director checks.
	w.AddSystem(systems.WithPauseCheck(systems.StepPhysics))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateBosses))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateBossProjectiles))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateArenas))
	w.AddSystem(systems.WithPauseCheck(systems.ReapCombatants))
	w.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerCombat))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateEncounter))

	return &Engine{ecs: w, cfg: cfg, provider: provider, player: player}, nil
}

// Tick advances the simulation by dt seconds. When blocked is set no new
// player attack starts, but every timer and projectile still advances.
func (e *Engine) Tick(dt float64, blocked bool) {
	clock := components.GetClock(e.ecs.World)
	clock.DT = dt
	clock.Blocked = blocked
	e.ecs.Update()
	if !clock.Paused {
		clock.Ticks++
	}
}

func (e *Engine) SetPaused(paused bool) {
	components.GetClock(e.ecs.World).Paused = paused
}

func (e *Engine) StartLevel(index int) error {
	return systems.StartLevel(e.ecs, index)
}

func (e *Engine) StartSurvival() error {
	return systems.StartSurvival(e.ecs)
}

// Clear releases every combatant and projectile and suppresses the boss.
func (e *Engine) Clear() {
	systems.ClearEncounter(e.ecs)
}

func (e *Engine) IsLevelComplete() bool {
	return systems.IsLevelComplete(e.ecs.World)
}

func (e *Engine) SwordAttack() bool { return systems.SwordAttack(e.ecs) }
func (e *Engine) GunShoot() bool    { return systems.GunShoot(e.ecs) }
func (e *Engine) Reload() bool      { return systems.StartReload(e.ecs) }

func (e *Engine) SelectElement(el config.Element) bool {
	return systems.SelectElement(e.ecs, el)
}

func (e *Engine) AddAmmo(el config.Element, amount int) bool {
	return systems.AddAmmo(e.ecs, el, amount)
}

func (e *Engine) SetDamageMultiplier(m float64) {
	systems.SetDamageMultiplier(e.ecs, m)
}

// Arsenal returns a copy of the player's weapon state.
func (e *Engine) Arsenal() components.ArsenalData {
	a := *components.Arsenal.Get(e.player)
	a.Reserve = make(map[config.Element]int, len(a.Reserve))
	for k, v := range components.Arsenal.Get(e.player).Reserve {
		a.Reserve[k] = v
	}
	return a
}

func (e *Engine) PlayerBody() physics.BodyID {
	return components.Body.Get(e.player).ID
}

func (e *Engine) PlayerPosition() (gamemath.Vec3, bool) {
	return systems.PlayerPosition(e.ecs.World)
}

func (e *Engine) Provider() physics.Provider { return e.provider }
func (e *Engine) Config() *config.Config     { return e.cfg }
func (e *Engine) World() donburi.World       { return e.ecs.World }
func (e *Engine) ECS() *ecs.ECS              { return e.ecs }

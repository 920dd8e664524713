package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recorder struct {
	kills      []gamemath.Vec3
	bossKills  []string
	completed  []int
	playerHits []float64
	loot       []gamemath.Vec3
	narration  []string
}

func (r *recorder) OnKill(pos gamemath.Vec3)                { r.kills = append(r.kills, pos) }
func (r *recorder) OnBossKill(name string, _ gamemath.Vec3) { r.bossKills = append(r.bossKills, name) }
func (r *recorder) OnLevelComplete(index int)               { r.completed = append(r.completed, index) }
func (r *recorder) OnPlayerHit(damage float64)              { r.playerHits = append(r.playerHits, damage) }
func (r *recorder) DropLoot(pos gamemath.Vec3)              { r.loot = append(r.loot, pos) }
func (r *recorder) Narrate(msg string)                      { r.narration = append(r.narration, msg) }

type keys struct {
	melee, fire, reload bool
}

func (k *keys) MeleeDown() bool  { return k.melee }
func (k *keys) FireDown() bool   { return k.fire }
func (k *keys) ReloadDown() bool { return k.reload }

type fixedAim struct {
	origin, dir gamemath.Vec3
}

func (a fixedAim) AimRay() (gamemath.Vec3, gamemath.Vec3, bool) { return a.origin, a.dir, true }

type harness struct {
	t      *testing.T
	ecs    *ecs.ECS
	cfg    *config.Config
	world  *physics.World
	hooks  *recorder
	keys   *keys
	player *donburi.Entry
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	require.NoError(t, cfg.Validate())

	h := &harness{
		t:     t,
		ecs:   ecs.NewECS(donburi.NewWorld()),
		cfg:   cfg,
		world: physics.NewWorld(cfg.Physics.Extent, cfg.Physics.CellSize),
		hooks: &recorder{},
		keys:  &keys{},
	}
	factory.CreateEnvironment(h.ecs, cfg, h.world, rand.New(rand.NewSource(7)), components.CollaboratorsData{
		Hooks:    h.hooks,
		Controls: h.keys,
	})
	factory.CreateEncounter(h.ecs)
	h.player = factory.CreatePlayer(h.ecs, gamemath.Vec3{})

	h.ecs.AddSystem(StepPhysics)
	h.ecs.AddSystem(UpdateEnemies)
	h.ecs.AddSystem(UpdateBosses)
	h.ecs.AddSystem(UpdateBossProjectiles)
	h.ecs.AddSystem(UpdateArenas)
	h.ecs.AddSystem(ReapCombatants)
	h.ecs.AddSystem(UpdatePlayerCombat)
	h.ecs.AddSystem(UpdateEncounter)
	return h
}

func (h *harness) tick(dt float64) {
	components.GetClock(h.ecs.World).DT = dt
	h.ecs.Update()
}

func (h *harness) run(seconds, dt float64) {
	for n := int(seconds/dt + 0.5); n > 0; n-- {
		h.tick(dt)
	}
}

func (h *harness) setBlocked(b bool) {
	components.GetClock(h.ecs.World).Blocked = b
}

func (h *harness) arsenal() *components.ArsenalData {
	return components.Arsenal.Get(h.player)
}

func (h *harness) encounter() *components.EncounterData {
	return components.GetEncounter(h.ecs.World)
}

func (h *harness) setAim(origin, dir gamemath.Vec3) {
	components.GetCollaborators(h.ecs.World).Aim = fixedAim{origin, dir}
}

func (h *harness) enemies() []*donburi.Entry {
	return collect(h.ecs.World, tags.Enemy)
}

func (h *harness) projectiles(side components.Side) []*components.ProjectileData {
	var out []*components.ProjectileData
	components.Projectile.Each(h.ecs.World, func(e *donburi.Entry) {
		if p := components.Projectile.Get(e); p.Side == side {
			out = append(out, p)
		}
	})
	return out
}

func (h *harness) spawnEnemy(typ config.EnemyTypeConfig, pos gamemath.Vec3) *donburi.Entry {
	return factory.CreateEnemy(h.ecs, &typ, pos)
}

// spawnBoss creates a boss and makes it the director's active boss.
func (h *harness) spawnBoss(id string, pos gamemath.Vec3) *donburi.Entry {
	bt, err := h.cfg.Boss(id)
	require.NoError(h.t, err)
	b := factory.CreateBoss(h.ecs, id, bt, pos)
	h.encounter().Boss = b
	return b
}

func combatant(e *donburi.Entry) *components.CombatantData {
	return components.Combatant.Get(e)
}

// dummy is an enemy type that never moves, notices or attacks.
func dummy(health float64) config.EnemyTypeConfig {
	return config.EnemyTypeConfig{Name: "Dummy", Health: health, AttackRange: 0.1, AttackCooldown: 1}
}

// singleLevel replaces the level table with one level.
func singleLevel(cfg *config.Config, count int, spawns []gamemath.Vec3, boss string) *config.Config {
	cfg.Enemies["Dummy"] = dummy(40)
	cfg.Levels = []config.LevelConfig{{
		Name:       "Test",
		EnemyCount: count,
		EnemyType:  "Dummy",
		Spawns:     spawns,
		Boss:       boss,
	}}
	return cfg
}

package systems

import (
	"errors"
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveAhead() []gamemath.Vec3 {
	return []gamemath.Vec3{{X: -4, Z: 30}, {X: -2, Z: 30}, {Z: 30}, {X: 2, Z: 30}, {X: 4, Z: 30}}
}

func TestStartLevelErrors(t *testing.T) {
	h := newHarness(t, nil)

	err := StartLevel(h.ecs, 99)
	assert.True(t, errors.Is(err, config.ErrLevelOutOfRange))

	h.cfg.Levels[0].Boss = "dragon"
	err = StartLevel(h.ecs, 0)
	assert.True(t, errors.Is(err, config.ErrUnknownBoss))

	h.cfg.Levels[1].Spawns = nil
	err = StartLevel(h.ecs, 1)
	assert.True(t, errors.Is(err, config.ErrNoSpawnPoints))

	h.cfg.Levels[2].EnemyType = "Imp"
	err = StartLevel(h.ecs, 2)
	assert.True(t, errors.Is(err, config.ErrUnknownEnemyType))

	assert.Equal(t, components.StateIdle, h.encounter().FSM.Current())
	assert.Empty(t, h.enemies(), "nothing spawned on error")
}

func TestStartLevelSpawnsWave(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, StartLevel(h.ecs, 0))

	level := h.cfg.Levels[0]
	assert.Len(t, h.enemies(), level.EnemyCount)
	assert.Equal(t, components.StateClearing, h.encounter().FSM.Current())
	assert.False(t, h.encounter().BossDefeated)
	assert.False(t, IsLevelComplete(h.ecs.World))

	for _, e := range h.enemies() {
		c := combatant(e)
		assert.Equal(t, components.Unaware, c.Awareness)
		assert.Equal(t, level.EnemyType, c.TypeName)
	}
}

func TestSpawnJitterBeyondList(t *testing.T) {
	spawn := gamemath.V3(10, 0, 10)
	h := newHarness(t, singleLevel(config.Default(), 6, []gamemath.Vec3{spawn}, "troll"))
	require.NoError(t, StartLevel(h.ecs, 0))

	jitter := h.cfg.Encounter.SpawnJitter
	exact := 0
	for _, e := range h.enemies() {
		pos, ok := bodyPosition(h.ecs.World, e)
		require.True(t, ok)
		if pos == spawn {
			exact++
		}
		assert.LessOrEqual(t, pos.Sub(spawn).Length(), jitter*1.5)
	}
	assert.Equal(t, 1, exact, "only the first use of a spawn point is exact")
}

func TestScoringExactlyOnce(t *testing.T) {
	h := newHarness(t, singleLevel(config.Default(), 5, fiveAhead(), "troll"))
	require.NoError(t, StartLevel(h.ecs, 0))

	enemies := h.enemies()
	for _, e := range enemies[:3] {
		require.True(t, ApplyDamage(h.ecs, e, 1000))
		assert.False(t, ApplyDamage(h.ecs, e, 1000), "already dead")
	}

	assert.Equal(t, 3, ScoreCombatants(h.ecs))
	assert.Zero(t, ScoreCombatants(h.ecs), "second pass in the same tick scores nothing")

	for i := 0; i < 10; i++ {
		h.tick(0.1)
	}
	assert.Len(t, h.hooks.kills, 3)
	assert.Len(t, h.hooks.loot, 3)
	assert.Equal(t, 3, h.encounter().Kills)
	assert.Len(t, h.enemies(), 2)
}

func TestAlertEscalation(t *testing.T) {
	h := newHarness(t, singleLevel(config.Default(), 5, fiveAhead(), "troll"))
	require.NoError(t, StartLevel(h.ecs, 0))
	enemies := h.enemies()

	ApplyDamage(h.ecs, enemies[0], 1000)
	h.tick(0.1)
	for _, e := range enemies[1:] {
		assert.Equal(t, components.Unaware, combatant(e).Awareness, "four left, above the threshold")
	}
	assert.Empty(t, h.hooks.narration)

	ApplyDamage(h.ecs, enemies[1], 1000)
	h.tick(0.1)
	for _, e := range enemies[2:] {
		assert.Equal(t, components.Alerted, combatant(e).Awareness)
	}
	require.Len(t, h.hooks.narration, 1)

	ApplyDamage(h.ecs, enemies[2], 1000)
	h.tick(0.1)
	assert.Len(t, h.hooks.narration, 1, "alert narration is once per level")
	assert.True(t, h.encounter().AlertShown)
}

func TestLevelProgression(t *testing.T) {
	h := newHarness(t, singleLevel(config.Default(), 1, []gamemath.Vec3{{Z: 35}}, "troll"))
	require.NoError(t, StartLevel(h.ecs, 0))
	enc := h.encounter()

	assert.False(t, IsLevelComplete(h.ecs.World), "regular alive")
	ApplyDamage(h.ecs, h.enemies()[0], 1000)
	h.tick(0.1)

	boss, ok := activeBoss(h.ecs.World)
	require.True(t, ok, "boss arrives once the wave is clear")
	assert.Equal(t, components.StateBossFight, enc.FSM.Current())
	assert.Equal(t, "troll", components.Boss.Get(boss).TypeID)
	assert.False(t, IsLevelComplete(h.ecs.World), "boss not defeated")

	pos, _ := bodyPosition(h.ecs.World, boss)
	assert.InDelta(t, 20, pos.Z, 1, "spawned at the offset from the player")

	h.tick(0.1)
	assert.Len(t, collect(h.ecs.World, tags.Boss), 1, "exactly one boss")

	ApplyDamage(h.ecs, boss, 1e9)
	h.tick(0.1)
	assert.Equal(t, []string{"Thornback Troll"}, h.hooks.bossKills)
	assert.Len(t, h.hooks.loot, 1+h.cfg.BossRules.LootDrops)
	assert.True(t, enc.BossDefeated)
	assert.Nil(t, enc.Boss)
	assert.Empty(t, collect(h.ecs.World, tags.Boss))
	assert.True(t, IsLevelComplete(h.ecs.World))
	assert.Equal(t, components.StateComplete, enc.FSM.Current())

	h.run(1, 0.1)
	assert.Equal(t, []int{0}, h.hooks.completed, "completion reported once")
	assert.Len(t, h.hooks.bossKills, 1)
	assert.Empty(t, collect(h.ecs.World, tags.Boss), "no second boss")
}

func TestClearSuppressesBoss(t *testing.T) {
	h := newHarness(t, singleLevel(config.Default(), 3, fiveAhead(), "troll"))
	require.NoError(t, StartLevel(h.ecs, 0))
	h.spawnBoss("troll", gamemath.V3(0, 0, 20))
	combatant(h.encounter().Boss).AttackCooldown = 0
	h.tick(0.1)
	require.NotEmpty(t, h.projectiles(components.SideEnemy))
	bodies := h.world.Len()

	ClearEncounter(h.ecs)
	assert.Empty(t, h.enemies())
	assert.Empty(t, collect(h.ecs.World, tags.Boss))
	assert.Empty(t, collect(h.ecs.World, components.Projectile))
	assert.Empty(t, collect(h.ecs.World, components.Arena))
	assert.Equal(t, bodies-4, h.world.Len(), "combatant bodies released, player kept")
	assert.True(t, h.encounter().BossDefeated)
	assert.Equal(t, components.StateIdle, h.encounter().FSM.Current())

	h.run(1, 0.1)
	assert.Empty(t, collect(h.ecs.World, tags.Boss), "no late boss")
	assert.Empty(t, h.hooks.bossKills)
}

func TestRestartLevelReleasesEverything(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, StartLevel(h.ecs, 9))
	require.NoError(t, StartLevel(h.ecs, 0))

	assert.Len(t, h.enemies(), h.cfg.Levels[0].EnemyCount)
	assert.Equal(t, 1+h.cfg.Levels[0].EnemyCount, h.world.Len())
	assert.Zero(t, h.encounter().Kills)
}

func TestEmptyWaveGoesStraightToBoss(t *testing.T) {
	h := newHarness(t, singleLevel(config.Default(), 0, nil, "giant"))
	require.NoError(t, StartLevel(h.ecs, 0))
	h.tick(0.1)

	boss, ok := activeBoss(h.ecs.World)
	require.True(t, ok)
	assert.Equal(t, "giant", components.Boss.Get(boss).TypeID)
}

func TestSurvivalSpawnCadence(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, StartSurvival(h.ecs))

	s := h.cfg.Survival
	require.Len(t, h.enemies(), s.InitialCount)
	for _, e := range h.enemies() {
		c := combatant(e)
		assert.Equal(t, components.Alerted, c.Awareness)
		assert.GreaterOrEqual(t, c.AttackCooldown, 0.0)
		assert.LessOrEqual(t, c.AttackCooldown, s.StaggerMax)

		pos, _ := bodyPosition(h.ecs.World, e)
		d := gamemath.HorizontalDistance(gamemath.Vec3{}, pos)
		assert.GreaterOrEqual(t, d, s.SpawnMinDistance-1e-9)
		assert.LessOrEqual(t, d, s.SpawnMaxDistance+1e-9)
	}

	dt := 1.0 / 60
	for i := 0; i < 599; i++ {
		h.tick(dt)
	}
	assert.Len(t, h.enemies(), s.InitialCount, "no wave before the interval")

	h.tick(dt)
	assert.Len(t, h.enemies(), s.InitialCount+s.WaveSize, "one wave at 10s")
	assert.Equal(t, 1, h.encounter().SurvivalWaves)
	for _, e := range h.enemies() {
		assert.Equal(t, components.Alerted, combatant(e).Awareness)
	}

	for i := 0; i < 300; i++ {
		h.tick(dt)
	}
	assert.Equal(t, 1, h.encounter().SurvivalWaves, "next wave waits another interval")
}

func TestSurvivalNeverSpawnsBoss(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, StartSurvival(h.ecs))

	for _, e := range h.enemies() {
		ApplyDamage(h.ecs, e, 1e9)
	}
	h.run(1, 0.1)
	assert.Empty(t, collect(h.ecs.World, tags.Boss))
	assert.False(t, IsLevelComplete(h.ecs.World), "survival is won on time, not by clearing")
	assert.Equal(t, h.cfg.Survival.InitialCount, h.encounter().Kills)
	assert.Equal(t, components.StateSurvival, h.encounter().FSM.Current())
}

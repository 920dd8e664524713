package systems

import (
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grunt() config.EnemyTypeConfig {
	return config.EnemyTypeConfig{
		Name:            "Grunt",
		Health:          40,
		Speed:           4,
		DetectionRadius: 10,
		AttackRange:     1.5,
		AttackCooldown:  1,
		Damage:          7,
	}
}

func TestEnemyIdlesUntilDetection(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnEnemy(grunt(), gamemath.V3(0, 0, 20))

	h.run(1, 0.1)
	pos, _ := bodyPosition(h.ecs.World, e)
	assert.Equal(t, gamemath.V3(0, 0, 20), pos, "outside detection radius")
	assert.Equal(t, components.Unaware, combatant(e).Awareness)

	h.world.SetPosition(components.Body.Get(e).ID, gamemath.V3(0, 0, 9))
	h.tick(0.1)
	assert.Equal(t, components.Aware, combatant(e).Awareness)

	h.tick(0.5)
	pos, _ = bodyPosition(h.ecs.World, e)
	assert.InDelta(t, 7, pos.Z, 1e-6, "chased at speed toward the player")
	assert.InDelta(t, gamemath.Bearing(pos, gamemath.Vec3{}), combatant(e).Yaw, 1e-6)
}

func TestAlertedEnemyChasesFromAnywhere(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnEnemy(grunt(), gamemath.V3(60, 0, 0))
	combatant(e).Awareness = components.Alerted

	h.tick(0.1)
	h.tick(0.1)
	pos, _ := bodyPosition(h.ecs.World, e)
	assert.Less(t, pos.X, 60.0)
}

func TestEnemyStrikesOnCooldown(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnEnemy(grunt(), gamemath.V3(1, 0, 0))

	h.run(2.5, 0.1)
	require.Len(t, h.hooks.playerHits, 3, "at 0, 1 and 2 seconds")
	assert.Equal(t, 7.0, h.hooks.playerHits[0])

	x, z, _ := h.world.Velocity(components.Body.Get(e).ID)
	assert.Zero(t, x)
	assert.Zero(t, z)
}

func TestDeadEnemiesStopActing(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnEnemy(grunt(), gamemath.V3(1, 0, 0))
	require.True(t, ApplyDamage(h.ecs, e, 100))

	h.run(1, 0.1)
	assert.Empty(t, h.hooks.playerHits)
	assert.False(t, e.Valid(), "reaped")
	assert.Len(t, h.hooks.kills, 1)
}

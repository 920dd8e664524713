package netcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetCombatant(t *testing.T) {
	from := NetCombatantData{X: 0, Z: 10, Health: 100, TypeName: "Goblin"}
	to := NetCombatantData{X: 10, Z: 0, Health: 60, TypeName: "Goblin", Awareness: 2}

	got := LerpNetCombatant(from, to, 0.25)
	assert.InDelta(t, 2.5, got.X, 1e-9)
	assert.InDelta(t, 7.5, got.Z, 1e-9)
	assert.Equal(t, 60.0, got.Health, "discrete fields snap to the newer state")
	assert.Equal(t, 2, got.Awareness)
}

func TestLerpNetProjectile(t *testing.T) {
	from := NetProjectileData{X: 0, Y: 1, Z: 0, VelX: 40}
	to := NetProjectileData{X: 4, Y: 1, Z: -2, VelX: 40, Side: 1}

	got := LerpNetProjectile(from, to, 0.5)
	assert.Equal(t, NetProjectileData{X: 2, Y: 1, Z: -1, VelX: 40, Side: 1}, *got)
}

func TestLerpNetPlayer(t *testing.T) {
	got := LerpNetPlayer(NetPlayerData{X: 0, Magazine: 10}, NetPlayerData{X: 8, Magazine: 9}, 1)
	assert.Equal(t, 8.0, got.X)
	assert.Equal(t, 9, got.Magazine)
}

package game

import (
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/systems"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{Seed: 1})
	require.NoError(t, err)
	return e
}

func killAll(e *Engine, tag *donburi.ComponentType[donburi.Tag]) {
	var entries []*donburi.Entry
	tag.Each(e.World(), func(en *donburi.Entry) { entries = append(entries, en) })
	for _, en := range entries {
		systems.ApplyDamage(e.ECS(), en, 1e9)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.MagazineSize = 0

	_, err := New(Options{Config: cfg})
	assert.ErrorContains(t, err, "engine config")
}

func TestNewDefaults(t *testing.T) {
	e := newEngine(t)

	s := e.Status()
	assert.Equal(t, components.StateIdle, s.State)
	assert.Equal(t, -1, s.LevelIndex)
	assert.Nil(t, s.Boss)

	pos, ok := e.PlayerPosition()
	require.True(t, ok)
	assert.Zero(t, pos)

	a := e.Arsenal()
	assert.Equal(t, e.Config().Player.MagazineSize, a.CurrentMagazine)
	assert.Equal(t, config.ElementBasic, a.Selected)
}

func TestArsenalIsACopy(t *testing.T) {
	e := newEngine(t)
	a := e.Arsenal()
	a.Reserve[config.ElementFire] = 999
	a.CurrentMagazine = 0

	assert.Equal(t, 10, e.Arsenal().Reserve[config.ElementFire])
	assert.Equal(t, 10, e.Arsenal().CurrentMagazine)
}

func TestGunAndPause(t *testing.T) {
	e := newEngine(t)
	require.True(t, e.GunShoot())
	assert.Equal(t, 9, e.Arsenal().CurrentMagazine)
	assert.Equal(t, 1, e.Status().Projectiles)

	e.SetPaused(true)
	e.Tick(10, false)
	assert.Equal(t, 1, e.Status().Projectiles, "paused world does not advance")
	assert.Zero(t, components.GetClock(e.World()).Ticks)

	e.SetPaused(false)
	e.Tick(10, false)
	assert.Zero(t, e.Status().Projectiles, "expired")
	assert.Equal(t, 1, components.GetClock(e.World()).Ticks)
}

func TestFullLevel(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.StartLevel(0))

	s := e.Status()
	assert.Equal(t, "Greenwood", s.LevelName)
	assert.Equal(t, 4, s.AliveRegulars)
	assert.False(t, e.IsLevelComplete())

	killAll(e, tags.Enemy)
	e.Tick(1.0/60, false)

	s = e.Status()
	assert.Equal(t, 4, s.Kills)
	assert.Equal(t, components.StateBossFight, s.State)
	require.NotNil(t, s.Boss)
	assert.Equal(t, "troll", s.Boss.TypeID)
	assert.Equal(t, 1, s.Boss.Phase)
	assert.False(t, e.IsLevelComplete())

	killAll(e, tags.Boss)
	e.Tick(1.0/60, false)

	s = e.Status()
	assert.Equal(t, components.StateComplete, s.State)
	assert.Nil(t, s.Boss)
	assert.True(t, s.BossDefeated)
	assert.True(t, e.IsLevelComplete())
}

func TestClearAndSurvival(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.StartLevel(3))
	e.Clear()
	assert.Equal(t, components.StateIdle, e.Status().State)
	assert.Zero(t, e.Status().AliveRegulars)

	require.NoError(t, e.StartSurvival())
	e.Tick(0.5, false)
	s := e.Status()
	assert.True(t, s.Survival)
	assert.Equal(t, e.Config().Survival.InitialCount, s.AliveRegulars)
	assert.InDelta(t, 0.5, s.SurvivalElapsed, 1e-9)
	assert.False(t, e.IsLevelComplete())
}

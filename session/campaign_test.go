package session

import (
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newCampaign(t *testing.T, cfg *config.Config, store Storage) (*Campaign, *game.Engine, *Ledger) {
	t.Helper()
	ledger := NewLedger(DefaultRewards(), 100)
	engine, err := game.New(game.Options{Config: cfg, Hooks: ledger, Seed: 3})
	require.NoError(t, err)
	var records *Records
	if store != nil {
		records = NewRecords(store)
	}
	return NewCampaign(engine, ledger, records), engine, ledger
}

func slayAll(e *game.Engine) {
	var entries []*donburi.Entry
	components.Combatant.Each(e.World(), func(en *donburi.Entry) { entries = append(entries, en) })
	for _, en := range entries {
		systems.ApplyDamage(e.ECS(), en, 1e9)
	}
}

func oneLevel() *config.Config {
	cfg := config.Default()
	cfg.Levels = []config.LevelConfig{
		{Name: "Only", EnemyCount: 2, EnemyType: "Goblin", Spawns: []gamemath.Vec3{{Z: 30}}, Boss: "troll"},
	}
	return cfg
}

func TestCampaignMovesToSurvival(t *testing.T) {
	cfg := oneLevel()
	cfg.Survival.Duration = 0.5
	store := newMemStore()
	c, engine, ledger := newCampaign(t, cfg, store)
	require.NoError(t, c.Start(0, false))

	slayAll(engine)
	engine.Tick(0.1, false)
	c.Update()
	slayAll(engine)
	engine.Tick(0.1, false)
	c.Update()

	assert.Equal(t, 2, ledger.Kills)
	assert.Equal(t, 1, ledger.BossKills)
	require.True(t, engine.Status().Survival)

	for i := 0; i < 6; i++ {
		engine.Tick(0.1, false)
		c.Update()
	}
	assert.True(t, c.Finished())
	assert.Equal(t, components.StateIdle, engine.Status().State)

	best, err := NewRecords(store).Best()
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, ledger.Score, best.Score)
	assert.Greater(t, best.Score, DefaultRewards().SurvivalScore)
}

func TestCampaignRestartsAfterDefeat(t *testing.T) {
	c, engine, ledger := newCampaign(t, oneLevel(), nil)
	require.NoError(t, c.Start(0, false))
	slayAll(engine)
	engine.Tick(0.1, false)

	ledger.OnPlayerHit(500)
	c.Update()

	assert.False(t, ledger.Defeated())
	assert.Equal(t, 2, engine.Status().AliveRegulars, "level restarted")
	assert.Equal(t, 2, ledger.Kills, "score survives the restart")
	assert.False(t, c.Finished())
}

func TestCampaignStartError(t *testing.T) {
	c, _, _ := newCampaign(t, oneLevel(), nil)
	assert.ErrorIs(t, c.Start(4, false), config.ErrLevelOutOfRange)
}

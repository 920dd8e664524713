package session

import (
	"testing"

	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Squire"},
		{1499, "Squire"},
		{1500, "Knight"},
		{12000, "Paladin"},
		{99999, "Champion"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankFor(tt.score), "score %d", tt.score)
	}
}

func TestLedgerScoring(t *testing.T) {
	r := DefaultRewards()
	l := NewLedger(r, 100)

	l.OnKill(gamemath.Vec3{})
	l.OnKill(gamemath.Vec3{})
	l.OnBossKill("Thornback Troll", gamemath.Vec3{})
	l.OnLevelComplete(0)

	assert.Equal(t, 2, l.Kills)
	assert.Equal(t, 1, l.BossKills)
	assert.Equal(t, 2*r.KillScore+r.BossScore+r.LevelScore, l.Score)
	assert.Equal(t, 2*r.KillCoins+r.BossCoins, l.Coins)
	assert.Greater(t, r.BossScore, r.KillScore)
	assert.Equal(t, []int{0}, l.Completed)
}

func TestLedgerHealth(t *testing.T) {
	l := NewLedger(DefaultRewards(), 50)

	l.OnPlayerHit(20)
	assert.Equal(t, 30.0, l.Health)
	l.Heal(100)
	assert.Equal(t, 50.0, l.Health)

	l.OnPlayerHit(80)
	assert.Zero(t, l.Health)
	assert.True(t, l.Defeated())

	l.Heal(10)
	assert.Zero(t, l.Health, "no healing after defeat")
}

func TestLedgerLoot(t *testing.T) {
	r := DefaultRewards()
	l := NewLedger(r, 100)
	l.DropLoot(gamemath.V3(1, 0, 0))
	l.DropLoot(gamemath.V3(0, 5, 1))
	l.DropLoot(gamemath.V3(10, 0, 0))

	assert.Equal(t, 2, l.CollectLoot(gamemath.Vec3{}, 2))
	assert.Equal(t, []gamemath.Vec3{gamemath.V3(10, 0, 0)}, l.Loot)
	assert.Equal(t, 2*r.LootCoins, l.Coins)
	assert.Zero(t, l.CollectLoot(gamemath.Vec3{}, 2))
}

func TestLedgerNarrationIsBounded(t *testing.T) {
	l := NewLedger(DefaultRewards(), 100)
	for i := 0; i < maxNarration+3; i++ {
		l.Narrate("line")
	}
	l.Narrate("last")
	assert.Len(t, l.Narration, maxNarration)
	assert.Equal(t, "last", l.Narration[maxNarration-1])
}

func TestLedgerAdvanceLevel(t *testing.T) {
	l := NewLedger(DefaultRewards(), 100)

	_, ok := l.AdvanceLevel(3)
	assert.False(t, ok, "level not done")

	l.OnLevelComplete(0)
	next, ok := l.AdvanceLevel(3)
	require.True(t, ok)
	assert.Equal(t, 1, next)
	assert.False(t, l.LevelDone())

	l.OnLevelComplete(1)
	l.AdvanceLevel(3)
	l.OnLevelComplete(2)
	next, ok = l.AdvanceLevel(3)
	assert.False(t, ok, "last level")
	assert.Equal(t, 2, next)
}

func TestLedgerSurvival(t *testing.T) {
	r := DefaultRewards()
	l := NewLedger(r, 100)

	assert.False(t, l.FinishSurvival(179.9, 180))
	assert.True(t, l.FinishSurvival(180, 180))
	assert.False(t, l.FinishSurvival(200, 180), "bonus paid once")
	assert.Equal(t, r.SurvivalScore, l.Score)

	dead := NewLedger(r, 10)
	dead.OnPlayerHit(10)
	assert.False(t, dead.FinishSurvival(180, 180))

	rec := l.Record(180)
	assert.Equal(t, l.Score, rec.Score)
	assert.Equal(t, 180.0, rec.Survival)
	assert.Equal(t, RankFor(l.Score), rec.Rank)
}

func TestLedgerRevive(t *testing.T) {
	l := NewLedger(DefaultRewards(), 30)
	l.OnKill(gamemath.Vec3{})
	l.OnPlayerHit(50)
	require.True(t, l.Defeated())

	l.Revive()
	assert.False(t, l.Defeated())
	assert.Equal(t, 30.0, l.Health)
	assert.Equal(t, DefaultRewards().KillScore, l.Score)
}

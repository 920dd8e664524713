package session

import (
	"log"
	"math"

	"github.com/automoto/knightfall/shared/gamemath"
)

// Rewards holds the score and coin payouts for encounter events
type Rewards struct {
	KillScore     int
	KillCoins     int
	BossScore     int
	BossCoins     int
	LevelScore    int
	SurvivalScore int
	LootCoins     int // per collected drop
}

func DefaultRewards() Rewards {
	return Rewards{
		KillScore:     100,
		KillCoins:     5,
		BossScore:     1000,
		BossCoins:     50,
		LevelScore:    500,
		SurvivalScore: 2500,
		LootCoins:     2,
	}
}

type rank struct {
	minScore int
	name     string
}

var ranks = []rank{
	{0, "Squire"},
	{1500, "Knight"},
	{5000, "Captain"},
	{12000, "Paladin"},
	{25000, "Champion"},
}

// RankFor returns the rank title earned by a score.
func RankFor(score int) string {
	name := ranks[0].name
	for _, r := range ranks {
		if score >= r.minScore {
			name = r.name
		}
	}
	return name
}

const maxNarration = 8

// Ledger is the reference scoring collaborator. It implements
// components.Hooks and keeps the run's score, coins, kills and player health.
type Ledger struct {
	rewards Rewards

	Score     int
	Coins     int
	Kills     int
	BossKills int
	Health    float64
	MaxHealth float64

	Level     int
	Completed []int
	Loot      []gamemath.Vec3
	Narration []string

	levelDone bool
	defeated  bool
}

func NewLedger(rewards Rewards, maxHealth float64) *Ledger {
	return &Ledger{
		rewards:   rewards,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

func (l *Ledger) OnKill(gamemath.Vec3) {
	l.Kills++
	l.Score += l.rewards.KillScore
	l.Coins += l.rewards.KillCoins
}

func (l *Ledger) OnBossKill(name string, _ gamemath.Vec3) {
	l.BossKills++
	l.Score += l.rewards.BossScore
	l.Coins += l.rewards.BossCoins
	log.Printf("[session] %s slain, score %d", name, l.Score)
}

func (l *Ledger) OnLevelComplete(index int) {
	l.Completed = append(l.Completed, index)
	l.Score += l.rewards.LevelScore
	l.levelDone = true
	log.Printf("[session] level %d complete, score %d rank %s", index+1, l.Score, l.Rank())
}

// OnPlayerHit lowers player health. Hits after defeat are ignored.
func (l *Ledger) OnPlayerHit(damage float64) {
	if l.defeated {
		return
	}
	l.Health = math.Max(0, l.Health-damage)
	if l.Health == 0 {
		l.defeated = true
		log.Printf("[session] player defeated at score %d", l.Score)
	}
}

func (l *Ledger) DropLoot(pos gamemath.Vec3) {
	l.Loot = append(l.Loot, pos)
}

func (l *Ledger) Narrate(msg string) {
	l.Narration = append(l.Narration, msg)
	if len(l.Narration) > maxNarration {
		l.Narration = l.Narration[len(l.Narration)-maxNarration:]
	}
}

// CollectLoot picks up every drop within radius of pos on the ground plane
// and returns how many were taken.
func (l *Ledger) CollectLoot(pos gamemath.Vec3, radius float64) int {
	kept := l.Loot[:0]
	taken := 0
	for _, p := range l.Loot {
		if gamemath.HorizontalDistance(pos, p) <= radius {
			taken++
			continue
		}
		kept = append(kept, p)
	}
	l.Loot = kept
	l.Coins += taken * l.rewards.LootCoins
	return taken
}

// Heal restores health up to the maximum.
func (l *Ledger) Heal(amount float64) {
	if l.defeated || amount <= 0 {
		return
	}
	l.Health = math.Min(l.MaxHealth, l.Health+amount)
}

// Revive restores full health after a defeat. Score and coins are kept.
func (l *Ledger) Revive() {
	l.Health = l.MaxHealth
	l.defeated = false
}

func (l *Ledger) Defeated() bool { return l.defeated }

func (l *Ledger) Rank() string { return RankFor(l.Score) }

// LevelDone reports whether the current level has been completed and not yet
// advanced past.
func (l *Ledger) LevelDone() bool { return l.levelDone }

// AdvanceLevel moves to the next of total levels. It reports false when the
// current level is not done or was the last one.
func (l *Ledger) AdvanceLevel(total int) (int, bool) {
	if !l.levelDone || l.Level+1 >= total {
		return l.Level, false
	}
	l.Level++
	l.levelDone = false
	l.Loot = l.Loot[:0]
	return l.Level, true
}

// FinishSurvival awards the survival bonus once elapsed reaches duration.
// It reports whether the run survived.
func (l *Ledger) FinishSurvival(elapsed, duration float64) bool {
	if l.defeated || l.levelDone || elapsed < duration {
		return false
	}
	l.levelDone = true
	l.Score += l.rewards.SurvivalScore
	log.Printf("[session] survived %.0fs, score %d", elapsed, l.Score)
	return true
}

// Record summarizes the run for the best-run store.
func (l *Ledger) Record(survival float64) Record {
	return Record{
		Score:    l.Score,
		Coins:    l.Coins,
		Kills:    l.Kills,
		Level:    l.Level,
		Rank:     l.Rank(),
		Survival: survival,
	}
}

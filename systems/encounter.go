package systems

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoPlayer = errors.New("no player in world")

// fire sends an event to the director machine. Events that do not apply in
// the current state are ignored.
func fire(enc *components.EncounterData, event string) {
	if !enc.FSM.Can(event) {
		return
	}
	if err := enc.FSM.Event(context.Background(), event); err != nil {
		log.Printf("[director] event %s: %v", event, err)
	}
}

// StartLevel releases whatever is live and spawns the wave of level index.
// Configuration problems are returned before anything is touched.
func StartLevel(ecs *ecs.ECS, index int) error {
	cfg := components.GetRules(ecs.World).Config

	level, err := cfg.Level(index)
	if err != nil {
		return fmt.Errorf("start level: %w", err)
	}
	if _, err := cfg.Boss(level.Boss); err != nil {
		return fmt.Errorf("start level %d (%s): %w", index, level.Name, err)
	}
	var enemyType *config.EnemyTypeConfig
	if level.EnemyCount > 0 {
		if len(level.Spawns) == 0 {
			return fmt.Errorf("start level %d (%s): %w", index, level.Name, config.ErrNoSpawnPoints)
		}
		if enemyType, err = cfg.EnemyType(level.EnemyType); err != nil {
			return fmt.Errorf("start level %d (%s): %w", index, level.Name, err)
		}
	}

	ClearEncounter(ecs)

	enc := components.GetEncounter(ecs.World)
	resetEncounter(enc)
	enc.LevelIndex = index
	enc.Level = level
	enc.BossDefeated = false
	fire(enc, components.EventStart)

	rng := components.GetRules(ecs.World).Rand
	jitter := cfg.Encounter.SpawnJitter
	for i := 0; i < level.EnemyCount; i++ {
		pos := level.Spawns[i%len(level.Spawns)]
		if i >= len(level.Spawns) {
			pos.X += (rng.Float64()*2 - 1) * jitter
			pos.Z += (rng.Float64()*2 - 1) * jitter
		}
		factory.CreateEnemy(ecs, enemyType, pos)
	}
	fire(enc, components.EventSpawned)

	log.Printf("[director] level %d %s: %d enemies, boss %s", index+1, level.Name, level.EnemyCount, level.Boss)
	return nil
}

// StartSurvival clears the world and begins continuous spawning around the
// player. No boss ever appears in this mode.
func StartSurvival(ecs *ecs.ECS) error {
	cfg := components.GetRules(ecs.World).Config

	enemyType, err := cfg.EnemyType(cfg.Survival.EnemyType)
	if err != nil {
		return fmt.Errorf("start survival: %w", err)
	}
	playerPos, ok := PlayerPosition(ecs.World)
	if !ok {
		return fmt.Errorf("start survival: %w", ErrNoPlayer)
	}

	ClearEncounter(ecs)

	enc := components.GetEncounter(ecs.World)
	resetEncounter(enc)
	enc.Survival = true
	enc.SurvivalCountdown = cfg.Survival.WaveInterval
	fire(enc, components.EventSurvive)

	spawnSurvivalGroup(ecs, enemyType, playerPos, cfg.Survival.InitialCount)

	log.Printf("[director] survival started with %d %s", cfg.Survival.InitialCount, enemyType.Name)
	return nil
}

func resetEncounter(enc *components.EncounterData) {
	enc.LevelIndex = -1
	enc.Level = nil
	enc.Survival = false
	enc.Kills = 0
	enc.BossDefeated = true
	enc.AlertShown = false
	enc.CompleteNotified = false
	enc.Boss = nil
	enc.SurvivalElapsed = 0
	enc.SurvivalCountdown = 0
	enc.SurvivalWaves = 0
}

// ClearEncounter releases every combatant, the active boss, all projectiles
// and arenas, and returns the director to idle. It also marks the boss as
// defeated so nothing can spawn late.
func ClearEncounter(ecs *ecs.ECS) {
	enc := components.GetEncounter(ecs.World)
	wasActive := enc.FSM.Current() != components.StateIdle

	for _, e := range collect(ecs.World, components.Combatant) {
		removeCombatant(ecs, e)
	}
	for _, e := range collect(ecs.World, components.Projectile) {
		removeEntry(ecs, e)
	}
	for _, e := range collect(ecs.World, components.Arena) {
		removeEntry(ecs, e)
	}

	enc.Boss = nil
	enc.BossDefeated = true
	enc.Survival = false
	fire(enc, components.EventAbort)

	if wasActive {
		log.Printf("[director] encounter cleared")
	}
}

// IsLevelComplete is true once no regular is alive and the level boss is
// down. Survival never completes here; its success is timed by the caller.
func IsLevelComplete(w donburi.World) bool {
	enc := components.GetEncounter(w)
	if enc.Survival {
		return false
	}
	return enc.BossDefeated && AliveRegulars(w) == 0
}

// UpdateEncounter runs the director checks after combat: alert escalation,
// boss resolution and trigger, completion, and survival waves.
func UpdateEncounter(ecs *ecs.ECS) {
	enc := components.GetEncounter(ecs.World)
	if enc.FSM.Current() == components.StateIdle {
		return
	}

	ScoreCombatants(ecs)

	if enc.Survival {
		updateSurvival(ecs, enc)
		return
	}

	alive := AliveRegulars(ecs.World)
	escalateAlert(ecs, enc, alive)
	resolveBoss(ecs, enc)

	if alive == 0 {
		fire(enc, components.EventCleared)
		if enc.Boss == nil && !enc.BossDefeated {
			spawnLevelBoss(ecs, enc)
		}
	}

	if !enc.CompleteNotified && IsLevelComplete(ecs.World) {
		enc.CompleteNotified = true
		log.Printf("[director] level %d complete, %d kills", enc.LevelIndex+1, enc.Kills)
		components.GetCollaborators(ecs.World).Hooks.OnLevelComplete(enc.LevelIndex)
	}
}

func escalateAlert(ecs *ecs.ECS, enc *components.EncounterData, alive int) {
	threshold := components.GetRules(ecs.World).Config.Encounter.AlertThreshold
	if alive == 0 || alive > threshold {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Alive() {
			c.Awareness = components.Alerted
		}
	})

	if !enc.AlertShown {
		enc.AlertShown = true
		components.GetCollaborators(ecs.World).Hooks.Narrate(
			fmt.Sprintf("Only %d left. They know where you are!", alive))
	}
}

func spawnLevelBoss(ecs *ecs.ECS, enc *components.EncounterData) {
	playerPos, ok := PlayerPosition(ecs.World)
	if !ok {
		return
	}
	cfg := components.GetRules(ecs.World).Config
	bossType, err := cfg.Boss(enc.Level.Boss)
	if err != nil {
		log.Printf("[director] %v", err)
		enc.BossDefeated = true
		return
	}

	enc.Boss = factory.CreateBoss(ecs, enc.Level.Boss, bossType, playerPos.Add(cfg.BossRules.SpawnOffset))
	fire(enc, components.EventBossSpawn)

	log.Printf("[boss] %s spawned", bossType.Name)
	components.GetCollaborators(ecs.World).Hooks.Narrate(fmt.Sprintf("%s approaches!", bossType.Name))
}

// resolveBoss pays out a dead boss exactly once and removes it.
func resolveBoss(ecs *ecs.ECS, enc *components.EncounterData) {
	boss, ok := activeBoss(ecs.World)
	if !ok {
		enc.Boss = nil
		return
	}
	c := components.Combatant.Get(boss)
	if !c.Dead || c.Scored {
		return
	}

	pos := c.LastPosition
	if p, ok := bodyPosition(ecs.World, boss); ok {
		pos = p
	}
	c.Scored = true

	hooks := components.GetCollaborators(ecs.World).Hooks
	rules := components.GetRules(ecs.World).Config.BossRules
	hooks.OnBossKill(c.TypeName, pos)
	for i := 0; i < rules.LootDrops; i++ {
		angle := 2 * math.Pi * float64(i) / float64(rules.LootDrops)
		hooks.DropLoot(pos.Add(gamemath.Heading(angle).Scale(rules.LootScatter)))
	}
	hooks.Narrate(fmt.Sprintf("%s has fallen!", c.TypeName))

	enc.BossDefeated = true
	enc.Boss = nil
	removeCombatant(ecs, boss)
	fire(enc, components.EventBossDown)
}

func updateSurvival(ecs *ecs.ECS, enc *components.EncounterData) {
	dt := components.GetClock(ecs.World).DT
	cfg := components.GetRules(ecs.World).Config

	enc.SurvivalElapsed += dt
	enc.SurvivalCountdown -= dt
	if enc.SurvivalCountdown > timerEpsilon {
		return
	}
	enc.SurvivalCountdown += cfg.Survival.WaveInterval

	playerPos, ok := PlayerPosition(ecs.World)
	if !ok {
		return
	}
	enemyType, err := cfg.EnemyType(cfg.Survival.EnemyType)
	if err != nil {
		log.Printf("[director] survival wave: %v", err)
		return
	}
	spawnSurvivalGroup(ecs, enemyType, playerPos, cfg.Survival.WaveSize)
	enc.SurvivalWaves++
	log.Printf("[director] survival wave %d: %d %s", enc.SurvivalWaves, cfg.Survival.WaveSize, enemyType.Name)
}

// spawnSurvivalGroup places n alerted enemies in the distance band around
// the player, each with a random initial cooldown so they do not strike in
// unison.
func spawnSurvivalGroup(ecs *ecs.ECS, enemyType *config.EnemyTypeConfig, center gamemath.Vec3, n int) {
	rules := components.GetRules(ecs.World)
	s := rules.Config.Survival

	for i := 0; i < n; i++ {
		angle := rules.Rand.Float64() * 2 * math.Pi
		dist := s.SpawnMinDistance + rules.Rand.Float64()*(s.SpawnMaxDistance-s.SpawnMinDistance)
		e := factory.CreateEnemy(ecs, enemyType, center.Add(gamemath.Heading(angle).Scale(dist)))

		c := components.Combatant.Get(e)
		c.Awareness = components.Alerted
		c.AttackCooldown = rules.Rand.Float64() * s.StaggerMax
	}
}

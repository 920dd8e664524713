package factory

import (
	"math/rand"

	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnvironment spawns the singleton holding configuration, physics and
// collaborators. Nil collaborators fall back to no-ops.
func CreateEnvironment(ecs *ecs.ECS, cfg *config.Config, provider physics.Provider, rng *rand.Rand, collab components.CollaboratorsData) *donburi.Entry {
	env := archetypes.Environment.Spawn(ecs)
	if collab.Hooks == nil {
		collab.Hooks = components.NopHooks{}
	}
	components.Rules.SetValue(env, components.RulesData{Config: cfg, Rand: rng})
	components.Physics.SetValue(env, components.PhysicsData{Provider: provider})
	components.Collaborators.SetValue(env, collab)
	return env
}

// CreateEncounter spawns the director singleton in the idle state.
func CreateEncounter(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Encounter.Spawn(ecs)
	components.Encounter.SetValue(e, components.EncounterData{
		FSM:          NewDirectorFSM(),
		LevelIndex:   -1,
		BossDefeated: true,
	})
	return e
}

var everyState = []string{
	components.StateIdle,
	components.StateSpawning,
	components.StateClearing,
	components.StateBossPending,
	components.StateBossFight,
	components.StateComplete,
	components.StateSurvival,
}

// NewDirectorFSM builds the level progression machine:
// idle -> spawning -> clearing -> boss_pending -> boss_fight -> complete,
// idle -> survival, and abort from anywhere back to idle.
func NewDirectorFSM() *fsm.FSM {
	return fsm.NewFSM(
		components.StateIdle,
		fsm.Events{
			{Name: components.EventStart, Src: []string{components.StateIdle}, Dst: components.StateSpawning},
			{Name: components.EventSpawned, Src: []string{components.StateSpawning}, Dst: components.StateClearing},
			{Name: components.EventCleared, Src: []string{components.StateClearing}, Dst: components.StateBossPending},
			{Name: components.EventBossSpawn, Src: []string{components.StateBossPending}, Dst: components.StateBossFight},
			{Name: components.EventBossDown, Src: []string{components.StateBossFight}, Dst: components.StateComplete},
			{Name: components.EventSurvive, Src: []string{components.StateIdle}, Dst: components.StateSurvival},
			{Name: components.EventAbort, Src: everyState[1:], Dst: components.StateIdle},
		},
		fsm.Callbacks{},
	)
}

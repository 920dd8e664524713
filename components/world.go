package components

import (
	"math/rand"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/yohamta/donburi"
)

// ClockData carries the per-tick inputs.
type ClockData struct {
	DT      float64
	Blocked bool // no new player attacks this tick
	Paused  bool
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()

// RulesData holds the injected, read-only configuration and the engine's RNG.
type RulesData struct {
	Config *config.Config
	Rand   *rand.Rand
}

var Rules = donburi.NewComponentType[RulesData]()

type PhysicsData struct {
	Provider physics.Provider
}

var Physics = donburi.NewComponentType[PhysicsData]()

// CollaboratorsData holds the callbacks and input sources the engine talks to.
type CollaboratorsData struct {
	Hooks    Hooks
	Controls Controls
	Aim      AimProvider
}

var Collaborators = donburi.NewComponentType[CollaboratorsData]()

// Singleton accessors. Every engine world carries exactly one environment entity.

func GetClock(w donburi.World) *ClockData {
	return Clock.Get(Clock.MustFirst(w))
}

func GetRules(w donburi.World) *RulesData {
	return Rules.Get(Rules.MustFirst(w))
}

func GetProvider(w donburi.World) physics.Provider {
	return Physics.Get(Physics.MustFirst(w)).Provider
}

func GetCollaborators(w donburi.World) *CollaboratorsData {
	return Collaborators.Get(Collaborators.MustFirst(w))
}

func GetEncounter(w donburi.World) *EncounterData {
	return Encounter.Get(Encounter.MustFirst(w))
}

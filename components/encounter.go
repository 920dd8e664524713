package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// Director states
const (
	StateIdle        = "idle"
	StateSpawning    = "spawning"
	StateClearing    = "clearing"
	StateBossPending = "boss_pending"
	StateBossFight   = "boss_fight"
	StateComplete    = "complete"
	StateSurvival    = "survival"
)

// Director events
const (
	EventStart     = "start"
	EventSpawned   = "spawned"
	EventCleared   = "cleared"
	EventBossSpawn = "boss_spawn"
	EventBossDown  = "boss_down"
	EventSurvive   = "survive"
	EventAbort     = "abort"
)

type EncounterData struct {
	FSM *fsm.FSM

	LevelIndex int // -1 outside level mode
	Level      *config.LevelConfig
	Survival   bool

	Kills            int
	BossDefeated     bool
	AlertShown       bool
	CompleteNotified bool
	Boss             *donburi.Entry // active boss, nil when none

	SurvivalElapsed   float64
	SurvivalCountdown float64 // until the next survival wave
	SurvivalWaves     int
}

var Encounter = donburi.NewComponentType[EncounterData]()

package netcomponents

import "github.com/yohamta/donburi"

// NetEncounterData is the director and session summary. One per world.
type NetEncounterData struct {
	State     string // director state, e.g. "clearing", "boss_fight"
	Level     int
	LevelName string
	Survival  bool
	Elapsed   float64 // survival seconds
	Kills     int
	Alive     int
	Score     int
	Coins     int
	Rank      string
	Narration string // latest line
}

var NetEncounter = donburi.NewComponentType[NetEncounterData]()

package netcomponents

import "github.com/yohamta/donburi"

type NetCombatantData struct {
	X, Z      float64
	Yaw       float64
	TypeName  string // "Goblin", "Thornback Troll", etc.
	Health    float64
	MaxHealth float64
	Awareness int // 0=Unaware, 1=Aware, 2=Alerted
	Dead      bool
	Boss      bool
	Phase     int // bosses only
	Scale     float64
}

var NetCombatant = donburi.NewComponentType[NetCombatantData]()

// LerpNetCombatant interpolates between two combatant states
func LerpNetCombatant(from, to NetCombatantData, t float64) *NetCombatantData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	return &out
}

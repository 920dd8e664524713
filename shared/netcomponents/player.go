package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerData struct {
	X, Z      float64
	Yaw       float64
	Health    float64
	MaxHealth float64
	Magazine  int
	Reserve   int // reserve of the selected element
	Reloading bool
	Element   string
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates between two player states
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	return &out
}

package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ArsenalData is the player's weapon state. The magazine holds rounds of one
// element at a time (Loaded). Shots only leave while the loaded element is
// the selected one; switching elements takes a reload, which returns the
// unspent rounds to their reserve before drawing from the selected one.
type ArsenalData struct {
	SwordCooldown float64
	GunCooldown   float64

	MagazineSize    int
	CurrentMagazine int
	Reserve         map[config.Element]int

	IsReloading    bool
	ReloadTimer    float64
	ReloadDuration float64
	ReloadElement  config.Element // reserve locked in when the reload started

	Loaded           config.Element // element of the rounds in the magazine
	Selected         config.Element
	DamageMultiplier float64 // shop upgrades

	Forward gamemath.Vec3 // last known aim direction
}

// TotalAmmo is the magazine plus every reserve.
func (a *ArsenalData) TotalAmmo() int {
	total := a.CurrentMagazine
	for _, n := range a.Reserve {
		total += n
	}
	return total
}

var Arsenal = donburi.NewComponentType[ArsenalData]()

type PlayerData struct {
	Name string
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type BossData struct {
	TypeID        string
	Type          *config.BossTypeConfig
	Phase         int     // 1 or 2, never back to 1
	MeleeCooldown float64 // independent from the special-attack cooldown
	Arena         *donburi.Entry
}

var Boss = donburi.NewComponentType[BossData]()

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ArenaData is the pulsing ring drawn around a live boss.
type ArenaData struct {
	Owner  donburi.Entity
	Tweens [2]*gween.Tween // out and back
	Active int
	Radius float64
}

var Arena = donburi.NewComponentType[ArenaData]()

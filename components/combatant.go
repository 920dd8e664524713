package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Awareness gates the stealth multiplier.
type Awareness int

const (
	Unaware Awareness = iota
	Aware
	Alerted // forced aware by the director
)

func (a Awareness) String() string {
	switch a {
	case Aware:
		return "aware"
	case Alerted:
		return "alerted"
	default:
		return "unaware"
	}
}

// CombatantData is shared by regular enemies and bosses.
type CombatantData struct {
	TypeName  string
	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64
	Awareness Awareness

	AttackCooldown float64 // seconds until the next attack; bosses use it for specials
	Yaw            float64 // facing on the ground plane
	LastPosition   gamemath.Vec3

	Dead   bool
	Scored bool // kill already reported
}

// IsAware reports whether the combatant has noticed the player.
func (c *CombatantData) IsAware() bool {
	return c.Awareness != Unaware
}

// Alive reports whether the combatant still takes part in AI and collision.
func (c *CombatantData) Alive() bool {
	return !c.Dead
}

var Combatant = donburi.NewComponentType[CombatantData]()

// EnemyData holds the regular-enemy specifics.
type EnemyData struct {
	Type *config.EnemyTypeConfig // cached copy of the type entry
}

var Enemy = donburi.NewComponentType[EnemyData]()

// BodyData links an entity to its body in the physics provider.
type BodyData struct {
	ID physics.BodyID
}

var Body = donburi.NewComponentType[BodyData]()

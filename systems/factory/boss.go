package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns a boss and its arena ring. Bosses arrive already aware of
// the player.
func CreateBoss(ecs *ecs.ECS, typeID string, bossType *config.BossTypeConfig, pos gamemath.Vec3) *donburi.Entry {
	rules := components.GetRules(ecs.World)
	provider := components.GetProvider(ecs.World)

	boss := archetypes.Boss.Spawn(ecs)

	id := provider.Spawn(pos, rules.Config.Physics.BossBodyRadius*bossType.Scale, physics.TagBoss)
	components.Body.SetValue(boss, components.BodyData{ID: id})

	components.Combatant.SetValue(boss, components.CombatantData{
		TypeName:       bossType.Name,
		Health:         bossType.Health,
		MaxHealth:      bossType.Health,
		Speed:          bossType.Speed,
		Damage:         bossType.Damage,
		Awareness:      components.Aware,
		AttackCooldown: bossType.AttackCooldownBase,
		LastPosition:   pos,
	})

	typeCopy := *bossType
	components.Boss.SetValue(boss, components.BossData{
		TypeID: typeID,
		Type:   &typeCopy,
		Phase:  1,
		Arena:  CreateArena(ecs, boss.Entity(), rules.Config.BossRules),
	})

	return boss
}

// CreateArena spawns the ring pulsing around a boss. It loops between the
// base radius and base+pulse.
func CreateArena(ecs *ecs.ECS, owner donburi.Entity, rules config.BossRulesConfig) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	lo := float32(rules.ArenaRadius)
	hi := float32(rules.ArenaRadius + rules.ArenaPulse)
	half := float32(rules.ArenaPulsePeriod / 2)

	components.Arena.SetValue(arena, components.ArenaData{
		Owner: owner,
		Tweens: [2]*gween.Tween{
			gween.New(lo, hi, half, ease.InOutQuad),
			gween.New(hi, lo, half, ease.InOutQuad),
		},
		Radius: rules.ArenaRadius,
	})

	return arena
}

package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with a full magazine and the configured
// starting reserves, facing +Z.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	cfg := components.GetRules(ecs.World).Config
	provider := components.GetProvider(ecs.World)

	player := archetypes.Player.Spawn(ecs)

	id := provider.Spawn(pos, cfg.Physics.PlayerRadius, physics.TagPlayer)
	components.Body.SetValue(player, components.BodyData{ID: id})
	components.Player.SetValue(player, components.PlayerData{Name: "Knight"})

	reserve := make(map[config.Element]int, len(config.Elements))
	for _, el := range config.Elements {
		reserve[el] = cfg.Player.StartingAmmo[el]
	}

	components.Arsenal.SetValue(player, components.ArsenalData{
		MagazineSize:     cfg.Player.MagazineSize,
		CurrentMagazine:  cfg.Player.MagazineSize,
		Reserve:          reserve,
		ReloadDuration:   cfg.Player.ReloadDuration,
		Loaded:           config.ElementBasic,
		Selected:         config.ElementBasic,
		DamageMultiplier: 1,
		Forward:          gamemath.V3(0, 0, 1),
	})

	return player
}

package protocol

import (
	"fmt"

	"github.com/automoto/knightfall/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetCombatant  uint = 10
	SyncIDNetProjectile uint = 11
	SyncIDNetPlayer     uint = 12
	SyncIDNetEncounter  uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetCombatant  uint8 = 10
	InterpIDNetProjectile uint8 = 11
	InterpIDNetPlayer     uint8 = 12
)

// RegisterComponents registers the mirrored components with necs. The server
// and any spectator must call it before syncing.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetCombatant,
		netcomponents.NetCombatantData{},
		netcomponents.NetCombatant,
		esync.WithInterpFn(InterpIDNetCombatant, netcomponents.LerpNetCombatant),
	); err != nil {
		return fmt.Errorf("register combatant: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return fmt.Errorf("register projectile: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetPlayer,
		netcomponents.NetPlayerData{},
		netcomponents.NetPlayer,
		esync.WithInterpFn(InterpIDNetPlayer, netcomponents.LerpNetPlayer),
	); err != nil {
		return fmt.Errorf("register player: %w", err)
	}

	// encounter state is discrete
	if err := esync.RegisterComponent(
		SyncIDNetEncounter,
		netcomponents.NetEncounterData{},
		netcomponents.NetEncounter,
	); err != nil {
		return fmt.Errorf("register encounter: %w", err)
	}

	return nil
}

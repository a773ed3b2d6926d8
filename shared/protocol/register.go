package protocol

import (
	"fmt"

	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPhysicsLawsGroup uint = 10
	SyncIDNetCustomCore       uint = 11
	SyncIDNetPhysJoint        uint = 12
	SyncIDNetBee              uint = 13
	SyncIDNetHive             uint = 14
	SyncIDNetProjectile       uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetCustomCore uint8 = 11
	InterpIDNetProjectile uint8 = 15
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Moving bodies interpolate for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetCustomCore,
		netcomponents.NetObjDuckCustomCore{},
		netcomponents.NetCustomCore,
		esync.WithInterpFn(InterpIDNetCustomCore, netcomponents.LerpNetCustomCore),
	); err != nil {
		return fmt.Errorf("register custom core: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetObjProjectile{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return fmt.Errorf("register projectile: %w", err)
	}

	// Discrete records: no interpolation
	if err := esync.RegisterComponent(
		SyncIDNetPhysicsLawsGroup,
		netcomponents.NetObjDuckPhysicsLawsGroup{},
		netcomponents.NetPhysicsLawsGroup,
	); err != nil {
		return fmt.Errorf("register physics laws group: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetPhysJoint,
		netcomponents.NetObjDuckPhysJoint{},
		netcomponents.NetPhysJoint,
	); err != nil {
		return fmt.Errorf("register phys joint: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetBee,
		netcomponents.NetObjBee{},
		netcomponents.NetBee,
	); err != nil {
		return fmt.Errorf("register bee: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetHive,
		netcomponents.NetObjHive{},
		netcomponents.NetHive,
	); err != nil {
		return fmt.Errorf("register hive: %w", err)
	}

	return nil
}

package system

import (
	"github.com/lixenwraith/lobber/engine"
)

// RegisterSystems installs every frame and fixed-step system on the world
// Ordering comes from priorities, registration order does not matter
func RegisterSystems(world *engine.World) {
	world.AddSystem(NewLookSystem(world))
	world.AddSystem(NewMoveSystem(world))
	world.AddSystem(NewChargeSystem(world))
	world.AddSystem(NewFocusSystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewCullSystem(world))

	world.AddFixedSystem(NewGravitySystem(world))
	world.AddFixedSystem(NewIntegrateSystem(world))
	world.AddFixedSystem(NewBounceSystem(world))
}

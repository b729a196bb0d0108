package systems

import (
	"math"
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

// Rectangle represents a bounding rectangle for movement constraints.
type Rectangle struct {
	X, Y, Width, Height float64
}

// MovementSystem integrates physics velocity into transform position for
// every entity carrying both components, then applies an optional speed
// limit and boundary clamp.
type MovementSystem struct {
	*BaseSystem

	transform *components.TransformStore
	physics   *components.PhysicsStore

	maxSpeed float64
	boundary *Rectangle
}

// NewMovementSystem creates a new movement system bound to the given
// registry's transform/physics stores.
func NewMovementSystem(transform *components.TransformStore, physics *components.PhysicsStore) *MovementSystem {
	return &MovementSystem{
		BaseSystem: NewBaseSystem(MovementSystemType, MovementSystemPriority),
		transform:  transform,
		physics:    physics,
		maxSpeed:   -1,
	}
}

func (ms *MovementSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypePhysics}
}

// Update advances position by velocity * dt for every transform+physics
// entity, applying the system's own speed limit and boundary on top of
// whatever PhysicsStore.Integrate already did this frame.
func (ms *MovementSystem) Update(reg *ecs.Registry, deltaTime float64) error {
	if !ms.IsEnabled() {
		return nil
	}
	start := time.Now()
	processed := 0

	it := reg.Iterate(ms.GetRequiredComponents(), nil)
	for it.Advance() {
		transformHandle := it.Handle(ecs.ComponentTypeTransform)
		physicsHandle := it.Handle(ecs.ComponentTypePhysics)

		velocity := ms.physics.GetVelocity(physicsHandle)
		ms.limitSpeed(&velocity)
		ms.physics.SetVelocity(physicsHandle, velocity)

		position := ms.transform.GetPosition(transformHandle)
		position.X += velocity.X * deltaTime
		position.Y += velocity.Y * deltaTime
		ms.clampToBoundary(&position)
		ms.transform.SetPosition(transformHandle, position)

		processed++
	}

	ms.recordExecution(start, processed)
	return nil
}

func (ms *MovementSystem) SetMaxSpeed(maxSpeed float64) { ms.maxSpeed = maxSpeed }
func (ms *MovementSystem) GetMaxSpeed() float64         { return ms.maxSpeed }

func (ms *MovementSystem) SetBoundary(x, y, width, height float64) {
	ms.boundary = &Rectangle{X: x, Y: y, Width: width, Height: height}
}

func (ms *MovementSystem) GetBoundary() *Rectangle { return ms.boundary }

func (ms *MovementSystem) limitSpeed(velocity *ecs.Vector2) {
	if ms.maxSpeed <= 0 {
		return
	}
	speed := math.Sqrt(velocity.X*velocity.X + velocity.Y*velocity.Y)
	if speed > ms.maxSpeed {
		scale := ms.maxSpeed / speed
		velocity.X *= scale
		velocity.Y *= scale
	}
}

func (ms *MovementSystem) clampToBoundary(position *ecs.Vector2) {
	if ms.boundary == nil {
		return
	}
	if position.X < ms.boundary.X {
		position.X = ms.boundary.X
	} else if position.X > ms.boundary.X+ms.boundary.Width {
		position.X = ms.boundary.X + ms.boundary.Width
	}
	if position.Y < ms.boundary.Y {
		position.Y = ms.boundary.Y
	} else if position.Y > ms.boundary.Y+ms.boundary.Height {
		position.Y = ms.boundary.Y + ms.boundary.Height
	}
}

package systems

import (
	"math"
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

// PhysicsMaterial defines physics properties for a static collider.
type PhysicsMaterial struct {
	Friction    float64
	Restitution float64
	Density     float64
}

// Collider represents a static collision shape.
type Collider struct {
	Bounds    Rectangle
	IsTrigger bool
	Material  PhysicsMaterial
}

// Collision represents a collision event between an entity and a collider.
type Collision struct {
	Entity    ecs.Entity
	Bounds    Rectangle
	Timestamp int64
}

// PhysicsSystem applies gravity and drag to every physics body, then
// integrates acceleration into velocity and checks static colliders.
type PhysicsSystem struct {
	*BaseSystem

	transform *components.TransformStore
	physics   *components.PhysicsStore

	gravity         ecs.Vector2
	drag            float64
	staticColliders []Collider
	collisions      []Collision
}

func NewPhysicsSystem(transform *components.TransformStore, physics *components.PhysicsStore) *PhysicsSystem {
	return &PhysicsSystem{
		BaseSystem: NewBaseSystem(PhysicsSystemType, PhysicsSystemPriority),
		transform:  transform,
		physics:    physics,
		gravity:    ecs.Vector2{X: 0, Y: 9.8 * 100},
		drag:       0.98,
	}
}

func (ps *PhysicsSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypePhysics}
}

// Update applies gravity (through ApplyForce, to bodies with positive mass
// and the Gravity flag set; ApplyForce ignores static bodies) and drag to
// every body, then runs each body's own Integrate step, and finally checks
// the resulting position against every static collider.
func (ps *PhysicsSystem) Update(reg *ecs.Registry, deltaTime float64) error {
	if !ps.IsEnabled() {
		return nil
	}
	start := time.Now()
	processed := 0
	ps.collisions = ps.collisions[:0]

	it := reg.Iterate(ps.GetRequiredComponents(), nil)
	for it.Advance() {
		transformHandle := it.Handle(ecs.ComponentTypeTransform)
		physicsHandle := it.Handle(ecs.ComponentTypePhysics)

		if ps.physics.Mass.Get(physicsHandle.RepoSlot) > 0 && ps.physics.Gravity.Get(physicsHandle.RepoSlot) {
			ps.physics.ApplyForce(physicsHandle, ecs.Vector2{
				X: ps.gravity.X * ps.physics.Mass.Get(physicsHandle.RepoSlot),
				Y: ps.gravity.Y * ps.physics.Mass.Get(physicsHandle.RepoSlot),
			})
		}
		ps.applyDrag(physicsHandle, deltaTime)
		ps.physics.Integrate(physicsHandle, deltaTime)

		pos := ps.transform.GetPosition(transformHandle)
		for _, collider := range ps.staticColliders {
			if ps.checkAABBCollision(pos, collider.Bounds) {
				ps.collisions = append(ps.collisions, Collision{
					Entity: it.Entity(), Bounds: collider.Bounds, Timestamp: time.Now().UnixNano(),
				})
			}
		}
		processed++
	}

	ps.recordExecution(start, processed)
	return nil
}

func (ps *PhysicsSystem) SetGravity(gravity ecs.Vector2) { ps.gravity = gravity }
func (ps *PhysicsSystem) GetGravity() ecs.Vector2        { return ps.gravity }

func (ps *PhysicsSystem) AddStaticCollider(bounds Rectangle) {
	ps.staticColliders = append(ps.staticColliders, Collider{
		Bounds:   bounds,
		Material: PhysicsMaterial{Friction: 0.5, Restitution: 0.3, Density: 1.0},
	})
}

func (ps *PhysicsSystem) GetStaticColliders() []Collider { return ps.staticColliders }
func (ps *PhysicsSystem) GetCollisions() []Collision     { return ps.collisions }
func (ps *PhysicsSystem) ClearCollisions()               { ps.collisions = ps.collisions[:0] }

func (ps *PhysicsSystem) checkAABBCollision(point ecs.Vector2, bounds Rectangle) bool {
	return point.X >= bounds.X && point.X <= bounds.X+bounds.Width &&
		point.Y >= bounds.Y && point.Y <= bounds.Y+bounds.Height
}

func (ps *PhysicsSystem) applyDrag(h ecs.ComponentHandle, deltaTime float64) {
	v := ps.physics.GetVelocity(h)
	factor := math.Pow(ps.drag, deltaTime)
	v.X *= factor
	v.Y *= factor
	ps.physics.SetVelocity(h, v)
}

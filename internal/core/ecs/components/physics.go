package components

import (
	"math"

	"muscle-dreamer/internal/core/ecs"
)

// PhysicsStore backs the "physics" component type: velocity/acceleration
// integration, friction, gravity toggle, and a speed clamp, grounded on
// the teacher's PhysicsComponent but rewired onto columnar storage.
type PhysicsStore struct {
	Velocity     *ecs.TypedColumn[ecs.Vector2]
	Acceleration *ecs.TypedColumn[ecs.Vector2]
	Mass         *ecs.TypedColumn[float64]
	Friction     *ecs.TypedColumn[float64]
	Gravity      *ecs.TypedColumn[bool]
	IsStatic     *ecs.TypedColumn[bool]
	MaxSpeed     *ecs.TypedColumn[float64]
}

// NewPhysicsComponentType builds the schema and storage for "physics".
// Physics requires a transform: every physics component auto-attaches a
// transform component on add if one is not already present (spec §4.2
// required_types).
func NewPhysicsComponentType() (*ecs.ComponentTypeSchema, *PhysicsStore) {
	store := &PhysicsStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID:          ecs.ComponentTypePhysics,
		RequiredTypeIDs: []ecs.ComponentType{ecs.ComponentTypeTransform},
		Properties: []ecs.PropertySchema{
			{Name: "velocity", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "acceleration", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneDisabled},
			{Name: "mass", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "friction", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "gravity", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "is_static", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "max_speed", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "velocity":
				store.Velocity = ecs.NewTypedColumn[ecs.Vector2](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Vector2 { return ecs.Vector2{} }, p.Shareable, nil)
				return store.Velocity
			case "acceleration":
				store.Acceleration = ecs.NewTypedColumn[ecs.Vector2](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Vector2 { return ecs.Vector2{} }, p.Shareable, nil)
				return store.Acceleration
			case "mass":
				store.Mass = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 1 }, p.Shareable, nil)
				return store.Mass
			case "friction":
				store.Friction = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.Friction
			case "gravity":
				store.Gravity = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.Gravity
			case "is_static":
				store.IsStatic = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.IsStatic
			case "max_speed":
				store.MaxSpeed = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 10000 }, p.Shareable, nil)
				return store.MaxSpeed
			}
			return nil
		},
	}
	return schema, store
}

// ApplyForce adds force/mass to the acceleration column (F = ma).
func (s *PhysicsStore) ApplyForce(h ecs.ComponentHandle, force ecs.Vector2) {
	if s.IsStatic.Get(h.RepoSlot) || s.Mass.Get(h.RepoSlot) <= 0 {
		return
	}
	a := s.Acceleration.Get(h.RepoSlot)
	m := s.Mass.Get(h.RepoSlot)
	a.X += force.X / m
	a.Y += force.Y / m
	s.Acceleration.Set(h.RepoSlot, a)
}

// Integrate advances velocity from acceleration, applies friction, and
// clamps to max speed, then resets acceleration for the next frame.
func (s *PhysicsStore) Integrate(h ecs.ComponentHandle, dt float64) {
	if s.IsStatic.Get(h.RepoSlot) {
		return
	}
	slot := h.RepoSlot
	v := s.Velocity.Get(slot)
	a := s.Acceleration.Get(slot)
	v.X += a.X * dt
	v.Y += a.Y * dt

	if friction := s.Friction.Get(slot); friction > 0 {
		factor := 1.0 - friction*dt
		if factor < 0 {
			factor = 0
		}
		v.X *= factor
		v.Y *= factor
	}

	if maxSpeed := s.MaxSpeed.Get(slot); !math.IsInf(maxSpeed, 1) {
		speed := math.Sqrt(v.X*v.X + v.Y*v.Y)
		if speed > maxSpeed && speed > 0 {
			scale := maxSpeed / speed
			v.X *= scale
			v.Y *= scale
		}
	}

	s.Velocity.Set(slot, v)
	s.Acceleration.Set(slot, ecs.Vector2{})
}

func (s *PhysicsStore) GetVelocity(h ecs.ComponentHandle) ecs.Vector2 { return s.Velocity.Get(h.RepoSlot) }
func (s *PhysicsStore) SetVelocity(h ecs.ComponentHandle, v ecs.Vector2) { s.Velocity.Set(h.RepoSlot, v) }

package components

import (
	"muscle-dreamer/internal/core/ecs"
)

// TransformStore backs every transform component's declared properties
// with columnar storage. Position and Scale carry Value clone policy: the
// new entity produced by add_entity(template) gets an independent copy of
// both, never aliased with the template's.
type TransformStore struct {
	Position *ecs.TypedColumn[ecs.Vector2]
	Rotation *ecs.TypedColumn[float64]
	Scale    *ecs.TypedColumn[ecs.Vector2]
}

// NewTransformComponentType builds the schema and storage for the
// "transform" component type: position, rotation (radians), and scale.
func NewTransformComponentType() (*ecs.ComponentTypeSchema, *TransformStore) {
	store := &TransformStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeTransform,
		Properties: []ecs.PropertySchema{
			{Name: "position", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "rotation", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "scale", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "position":
				store.Position = ecs.NewTypedColumn[ecs.Vector2](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Vector2 { return ecs.Vector2{} }, p.Shareable, nil)
				return store.Position
			case "rotation":
				store.Rotation = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.Rotation
			case "scale":
				store.Scale = ecs.NewTypedColumn[ecs.Vector2](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Vector2 { return ecs.Vector2{X: 1, Y: 1} }, p.Shareable, nil)
				return store.Scale
			}
			return nil
		},
	}
	return schema, store
}

func (s *TransformStore) GetPosition(h ecs.ComponentHandle) ecs.Vector2   { return s.Position.Get(h.RepoSlot) }
func (s *TransformStore) SetPosition(h ecs.ComponentHandle, v ecs.Vector2) { s.Position.Set(h.RepoSlot, v) }

func (s *TransformStore) GetRotation(h ecs.ComponentHandle) float64   { return s.Rotation.Get(h.RepoSlot) }
func (s *TransformStore) SetRotation(h ecs.ComponentHandle, r float64) { s.Rotation.Set(h.RepoSlot, r) }

func (s *TransformStore) GetScale(h ecs.ComponentHandle) ecs.Vector2   { return s.Scale.Get(h.RepoSlot) }
func (s *TransformStore) SetScale(h ecs.ComponentHandle, v ecs.Vector2) { s.Scale.Set(h.RepoSlot, v) }

// Translate offsets the position by delta.
func (s *TransformStore) Translate(h ecs.ComponentHandle, delta ecs.Vector2) {
	p := s.GetPosition(h)
	p.X += delta.X
	p.Y += delta.Y
	s.SetPosition(h, p)
}

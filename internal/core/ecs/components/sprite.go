package components

import (
	"muscle-dreamer/internal/core/ecs"
)

// SpriteStore backs the "sprite" component type.
type SpriteStore struct {
	TextureID  *ecs.TypedColumn[string]
	SourceRect *ecs.TypedColumn[ecs.AABB]
	Color      *ecs.TypedColumn[ecs.Color]
	ZOrder     *ecs.TypedColumn[int]
	Visible    *ecs.TypedColumn[bool]
	FlipX      *ecs.TypedColumn[bool]
	FlipY      *ecs.TypedColumn[bool]
}

func NewSpriteComponentType() (*ecs.ComponentTypeSchema, *SpriteStore) {
	store := &SpriteStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeSprite,
		Properties: []ecs.PropertySchema{
			{Name: "texture_id", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "source_rect", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "color", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "z_order", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "visible", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "flip_x", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "flip_y", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "texture_id":
				store.TextureID = ecs.NewTypedColumn[string](capacity, p.ValueKind, p.ClonePolicy, func() string { return "" }, p.Shareable, nil)
				return store.TextureID
			case "source_rect":
				store.SourceRect = ecs.NewTypedColumn[ecs.AABB](capacity, p.ValueKind, p.ClonePolicy, func() ecs.AABB { return ecs.AABB{} }, p.Shareable, nil)
				return store.SourceRect
			case "color":
				store.Color = ecs.NewTypedColumn[ecs.Color](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Color { return ecs.Color{R: 255, G: 255, B: 255, A: 255} }, p.Shareable, nil)
				return store.Color
			case "z_order":
				store.ZOrder = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 0 }, p.Shareable, nil)
				return store.ZOrder
			case "visible":
				store.Visible = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return true }, p.Shareable, nil)
				return store.Visible
			case "flip_x":
				store.FlipX = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.FlipX
			case "flip_y":
				store.FlipY = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.FlipY
			}
			return nil
		},
	}
	return schema, store
}

func (s *SpriteStore) SetTexture(h ecs.ComponentHandle, textureID string, sourceRect ecs.AABB) {
	s.TextureID.Set(h.RepoSlot, textureID)
	s.SourceRect.Set(h.RepoSlot, sourceRect)
}

func (s *SpriteStore) SetColor(h ecs.ComponentHandle, color ecs.Color)  { s.Color.Set(h.RepoSlot, color) }
func (s *SpriteStore) SetVisible(h ecs.ComponentHandle, visible bool)   { s.Visible.Set(h.RepoSlot, visible) }
func (s *SpriteStore) SetFlipX(h ecs.ComponentHandle, flip bool)        { s.FlipX.Set(h.RepoSlot, flip) }
func (s *SpriteStore) SetFlipY(h ecs.ComponentHandle, flip bool)        { s.FlipY.Set(h.RepoSlot, flip) }

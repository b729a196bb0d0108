package systems

import (
	"sort"
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

// Camera represents the rendering camera/viewport.
type Camera struct {
	Position ecs.Vector2
	Zoom     float64
	Rotation float64
}

// RenderableEntity holds one frame's sprite draw data, gathered by
// RenderingSystem.Gather and consumed by a renderer (cmd/game's ebiten draw
// loop) outside the registry's single-threaded update.
type RenderableEntity struct {
	Entity   ecs.Entity
	Position ecs.Vector2
	Rotation float64
	Scale    ecs.Vector2
	Sprite   ecs.ComponentHandle
	ZOrder   int
}

// RenderingSystem culls and orders sprites for the frame's draw pass. It
// does not draw anything itself — Gather returns the ordered, culled list
// for an outer renderer to consume, matching the registry's "no I/O on the
// hot path" design.
type RenderingSystem struct {
	*BaseSystem

	transform *components.TransformStore
	sprite    *components.SpriteStore

	viewport *Rectangle
	camera   *Camera
}

func NewRenderingSystem(transform *components.TransformStore, sprite *components.SpriteStore) *RenderingSystem {
	return &RenderingSystem{
		BaseSystem: NewBaseSystem(RenderingSystemType, RenderingSystemPriority),
		transform:  transform,
		sprite:     sprite,
		camera:     &Camera{Zoom: 1.0},
	}
}

func (rs *RenderingSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypeSprite}
}

// Update refreshes metrics only; the actual gather happens in Gather so a
// renderer outside the frame's structural-mutation window can safely read it.
func (rs *RenderingSystem) Update(reg *ecs.Registry, deltaTime float64) error {
	start := time.Now()
	entities := rs.Gather(reg)
	rs.recordExecution(start, len(entities))
	return nil
}

// Gather collects every visible, in-viewport sprite entity, sorted by
// z-order for back-to-front drawing.
func (rs *RenderingSystem) Gather(reg *ecs.Registry) []RenderableEntity {
	var out []RenderableEntity
	it := reg.Iterate(rs.GetRequiredComponents(), nil)
	for it.Advance() {
		transformHandle := it.Handle(ecs.ComponentTypeTransform)
		spriteHandle := it.Handle(ecs.ComponentTypeSprite)
		if !rs.sprite.Visible.Get(spriteHandle.RepoSlot) {
			continue
		}
		pos := rs.transform.GetPosition(transformHandle)
		if !rs.isInViewport(pos, rs.sprite.SourceRect.Get(spriteHandle.RepoSlot)) {
			continue
		}
		out = append(out, RenderableEntity{
			Entity:   it.Entity(),
			Position: rs.transformToScreen(pos),
			Rotation: rs.transform.GetRotation(transformHandle),
			Scale:    rs.transform.GetScale(transformHandle),
			Sprite:   spriteHandle,
			ZOrder:   rs.sprite.ZOrder.Get(spriteHandle.RepoSlot),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZOrder < out[j].ZOrder })
	return out
}

func (rs *RenderingSystem) SetViewport(x, y, width, height float64) {
	rs.viewport = &Rectangle{X: x, Y: y, Width: width, Height: height}
}

func (rs *RenderingSystem) GetViewport() *Rectangle { return rs.viewport }

func (rs *RenderingSystem) SetCamera(position ecs.Vector2, zoom, rotation float64) {
	rs.camera.Position = position
	rs.camera.Zoom = zoom
	rs.camera.Rotation = rotation
}

func (rs *RenderingSystem) GetCamera() *Camera { return rs.camera }

func (rs *RenderingSystem) isInViewport(position ecs.Vector2, sourceRect ecs.AABB) bool {
	if rs.viewport == nil {
		return true
	}
	width := sourceRect.Max.X - sourceRect.Min.X
	height := sourceRect.Max.Y - sourceRect.Min.Y
	return !(position.X+width < rs.viewport.X ||
		position.X > rs.viewport.X+rs.viewport.Width ||
		position.Y+height < rs.viewport.Y ||
		position.Y > rs.viewport.Y+rs.viewport.Height)
}

func (rs *RenderingSystem) transformToScreen(worldPos ecs.Vector2) ecs.Vector2 {
	return ecs.Vector2{
		X: (worldPos.X - rs.camera.Position.X) * rs.camera.Zoom,
		Y: (worldPos.Y - rs.camera.Position.Y) * rs.camera.Zoom,
	}
}

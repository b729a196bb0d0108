// Package ecs provides a data-oriented entity-component framework: the
// state of every component is stored in columnar, densely-packed arrays
// and iteration over entities carrying a given combination of component
// types drives over the shortest of those arrays. The package is
// single-threaded by design — see Registry for the concurrency model.
package ecs

import (
	"time"
)

// ==============================================
// Basic Types
// ==============================================

// ComponentType is the opaque stable identifier for a component schema.
// String-based for human readability and debugging ease, matching the
// teacher's convention.
type ComponentType string

// SystemType identifies a registered system.
type SystemType string

// Priority defines execution order for systems. Higher values execute first.
type Priority int

const (
	PriorityLowest  Priority = 0
	PriorityLow     Priority = 25
	PriorityNormal  Priority = 50
	PriorityHigh    Priority = 75
	PriorityHighest Priority = 100
)

// Entity is a generational handle: Slot is the row in the entity table and
// in every repository's entity->component index, ID is a strictly
// increasing allocation number distinguishing successive occupants of the
// same slot. Slot 0 is reserved as the sentinel "no entity".
type Entity struct {
	Slot uint32
	ID   uint32
}

// InvalidEntity is the sentinel dead entity value.
var InvalidEntity = Entity{}

// IsZero reports whether e is the sentinel value. It does not by itself
// mean the entity is dead in a live registry — use Registry.IsEntityAlive.
func (e Entity) IsZero() bool {
	return e.Slot == 0
}

// ComponentHandle identifies one component instance: its declared type,
// the repository slot backing its storage, its allocation id (comp_id),
// and the entity slot it is attached to.
type ComponentHandle struct {
	Type       ComponentType
	RepoSlot   uint32
	CompID     uint32
	EntitySlot uint32
}

// IsZero reports whether h is the sentinel dead handle value.
func (h ComponentHandle) IsZero() bool {
	return h.RepoSlot == 0
}

// ==============================================
// Performance / Observability Types
// ==============================================

// PerformanceMetrics contains real-time performance data for the registry.
type PerformanceMetrics struct {
	EntityCount    int           `json:"entity_count"`
	ComponentCount int           `json:"component_count"`
	SystemCount    int           `json:"system_count"`
	MemoryUsage    int64         `json:"memory_usage"`
	FrameTime      time.Duration `json:"frame_time"`
	UpdateTime     time.Duration `json:"update_time"`
	QueryTime      time.Duration `json:"query_time"`
	Timestamp      time.Time     `json:"timestamp"`

	TargetFPS float64 `json:"target_fps"`
	ActualFPS float64 `json:"actual_fps"`
}

// StorageStats reports per-repository storage statistics.
type StorageStats struct {
	ComponentType   ComponentType `json:"component_type"`
	ComponentCount  int           `json:"component_count"`
	Cursor          uint32        `json:"cursor"`
	Capacity        uint32        `json:"capacity"`
	DecoratedColumn int           `json:"decorated_columns"`
}

// ==============================================
// Utility Types
// ==============================================

// Vector2 represents a 2D vector for positions, velocities, etc.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AABB (Axis-Aligned Bounding Box) for collision detection.
type AABB struct {
	Min Vector2 `json:"min"`
	Max Vector2 `json:"max"`
}

// Color represents RGBA color values.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// TransformMatrix represents a 3x3 2D transformation matrix in column-major order.
type TransformMatrix [9]float64

// ==============================================
// Constants
// ==============================================

const (
	TargetFPS = 60 // Target frames per second for the demo loop

	// Invalid values
	InvalidComponentType ComponentType = ""
	InvalidSystemType    SystemType    = ""
)

// Component type constants for the sample components shipped in ./components.
const (
	ComponentTypeTransform ComponentType = "transform"
	ComponentTypeSprite    ComponentType = "sprite"
	ComponentTypePhysics   ComponentType = "physics"
	ComponentTypeHealth    ComponentType = "health"
	ComponentTypeAI        ComponentType = "ai"
	ComponentTypeInventory ComponentType = "inventory"
	ComponentTypeEnergy    ComponentType = "energy"
	ComponentTypeAudio     ComponentType = "audio"
)

// System type constants for the sample systems shipped in ../systems.
const (
	SystemTypeMovement  SystemType = "movement"
	SystemTypePhysics   SystemType = "physics"
	SystemTypeAI        SystemType = "ai"
	SystemTypeAudio     SystemType = "audio"
	SystemTypeRendering SystemType = "rendering"
)

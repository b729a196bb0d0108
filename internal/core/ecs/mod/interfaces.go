package mod

import (
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/query"
)

// ModECSAPI is the sandboxed surface a mod script sees instead of the full
// Registry: every call is mediated by a ModContext's resource limits and
// ownership checks, so a mod can only touch entities and components it
// created itself.
type ModECSAPI interface {
	Entities() ModEntityAPI
	Components() ModComponentAPI
	Queries() ModQueryAPI
	Systems() ModSystemAPI
	GetContext() *ModContext
}

// ModEntityAPI is the restricted entity surface offered to a mod.
type ModEntityAPI interface {
	Create(tags ...string) (ecs.Entity, error)
	Delete(e ecs.Entity) error
	GetTags(e ecs.Entity) ([]string, error)
	GetOwned() ([]ecs.Entity, error)
}

// ModComponentAPI is the restricted component surface offered to a mod.
type ModComponentAPI interface {
	Add(e ecs.Entity, componentType ecs.ComponentType) (ecs.ComponentHandle, error)
	Get(e ecs.Entity, componentType ecs.ComponentType) (ecs.ComponentHandle, error)
	Remove(e ecs.Entity, componentType ecs.ComponentType) error
	IsAllowed(componentType ecs.ComponentType) bool
}

// ModQueryAPI is the restricted query surface offered to a mod: results are
// always filtered down to entities the mod itself owns.
type ModQueryAPI interface {
	Find(b *query.Builder) ([]ecs.Entity, error)
	Count(b *query.Builder) (int, error)
	GetExecutionCount() int
	ResetExecutionCount()
}

// ModSystemAPI lets a mod register its own per-frame update hooks.
type ModSystemAPI interface {
	Register(system ModSystem) error
	Unregister(systemID string) error
	GetRegistered() []string
}

// ModSystem is a mod-provided per-frame update hook.
type ModSystem interface {
	GetID() string
	Update(ctx *ModContext, deltaTime time.Duration) error
	GetMaxExecutionTime() time.Duration
}

// ModContext tracks one mod's resource usage against its configured limits.
type ModContext struct {
	ModID              string
	MaxEntities        int
	MaxMemory          int64
	MaxExecutionTime   time.Duration
	AllowedComponents  []ecs.ComponentType
	CreatedEntities    []ecs.Entity
	SystemEntityCutoff uint32 // entities with Slot below this belong to the host, not any mod
	MemoryUsage        int64
	ExecutionTime      time.Duration
	QueryCount         int
	MaxQueryCount      int
}

// ModECSAPIFactory creates and tears down one ModECSAPI per mod, all sharing
// the same underlying registry.
type ModECSAPIFactory interface {
	Create(modID string, reg *ecs.Registry, config ModConfig) (ModECSAPI, error)
	Destroy(modID string) error
}

// ModConfig bounds what a single mod instance may do.
type ModConfig struct {
	MaxEntities        int
	MaxMemory          int64
	MaxExecutionTime   time.Duration
	AllowedComponents  []ecs.ComponentType
	MaxQueryCount      int
	SystemEntityCutoff uint32
}

// DefaultModConfig is a conservative default: a handful of presentation and
// gameplay component types, no system access.
func DefaultModConfig() ModConfig {
	return ModConfig{
		MaxEntities:      100,
		MaxMemory:        10 * 1024 * 1024, // 10MB
		MaxExecutionTime: 5 * time.Millisecond,
		AllowedComponents: []ecs.ComponentType{
			ecs.ComponentTypeSprite,
			ecs.ComponentTypePhysics,
			ecs.ComponentTypeHealth,
			ecs.ComponentTypeAI,
			ecs.ComponentTypeInventory,
			ecs.ComponentTypeEnergy,
		},
		MaxQueryCount: 1000,
	}
}

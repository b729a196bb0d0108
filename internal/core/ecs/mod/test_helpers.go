package mod

import (
	"fmt"
	"testing"
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
	"muscle-dreamer/internal/core/ecs/query"
)

func newSpriteBuilder() *query.Builder {
	return query.NewBuilder().With(ecs.ComponentTypeSprite)
}

// testModSystem is a ModSystem test double whose update hook does nothing.
type testModSystem struct {
	id               string
	maxExecutionTime time.Duration
}

func (t *testModSystem) GetID() string { return t.id }
func (t *testModSystem) Update(ctx *ModContext, deltaTime time.Duration) error { return nil }
func (t *testModSystem) GetMaxExecutionTime() time.Duration                   { return t.maxExecutionTime }

var testCounter int

func newTestRegistry(t testing.TB) *ecs.Registry {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	transformSchema, _ := components.NewTransformComponentType()
	if err := reg.RegisterComponentType(transformSchema); err != nil {
		t.Fatal(err)
	}
	spriteSchema, _ := components.NewSpriteComponentType()
	if err := reg.RegisterComponentType(spriteSchema); err != nil {
		t.Fatal(err)
	}
	physicsSchema, _ := components.NewPhysicsComponentType()
	if err := reg.RegisterComponentType(physicsSchema); err != nil {
		t.Fatal(err)
	}
	return reg
}

func createTestModAPI(t testing.TB, reg *ecs.Registry, modID string) ModECSAPI {
	t.Helper()
	testCounter++
	uniqueModID := fmt.Sprintf("%s-%d", modID, testCounter)
	return NewModECSAPI(uniqueModID, reg, DefaultModConfig())
}

// createEntityWithMod simulates an entity owned by a different mod: a real
// registry entity the calling mod's API never created, so every ownership
// check on it must fail.
func createEntityWithMod(t testing.TB, reg *ecs.Registry) ecs.Entity {
	t.Helper()
	return reg.AddEntity()
}

// createSystemEntity simulates a host-owned entity below the configured
// SystemEntityCutoff.
func createSystemEntity(t testing.TB, reg *ecs.Registry) ecs.Entity {
	t.Helper()
	return reg.AddEntity()
}

func createTestModSystem(id string) ModSystem {
	return &testModSystem{
		id:               "safe-" + id,
		maxExecutionTime: 3 * time.Millisecond,
	}
}

func createLongRunningModSystem(id string, duration time.Duration) ModSystem {
	return &testModSystem{id: id, maxExecutionTime: duration}
}

func createMaliciousSystem(command string) ModSystem {
	return &testModSystem{id: command, maxExecutionTime: time.Millisecond}
}

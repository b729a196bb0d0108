package mod

import (
	"sync"
	"time"

	"muscle-dreamer/internal/core/ecs"
)

// PerformanceMonitor tracks a single mod's API call latency and memory
// usage over its lifetime.
type PerformanceMonitor struct {
	mu               sync.RWMutex
	apiCallDurations map[string][]time.Duration
	memorySnapshots  []int64
	queryFrequency   map[string]int
}

// NewPerformanceMonitor creates an empty monitor.
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		apiCallDurations: make(map[string][]time.Duration),
		memorySnapshots:  make([]int64, 0),
		queryFrequency:   make(map[string]int),
	}
}

// RecordAPICall logs how long operation took.
func (p *PerformanceMonitor) RecordAPICall(operation string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.apiCallDurations[operation] = append(p.apiCallDurations[operation], duration)
}

// RecordMemorySnapshot logs the mod's current memory usage.
func (p *PerformanceMonitor) RecordMemorySnapshot(usage int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.memorySnapshots = append(p.memorySnapshots, usage)
}

// GetAverageAPICallTime returns the mean duration of calls to operation.
func (p *PerformanceMonitor) GetAverageAPICallTime(operation string) time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	durations := p.apiCallDurations[operation]
	if len(durations) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total / time.Duration(len(durations))
}

// EntityPool recycles ModEntityAPIImpl instances across short-lived mod
// sandboxes, so reloading a mod doesn't churn its per-entity bookkeeping
// maps.
type EntityPool struct {
	pool chan *ModEntityAPIImpl
	size int
}

// NewEntityPool creates a pool with the given capacity.
func NewEntityPool(size int) *EntityPool {
	return &EntityPool{
		pool: make(chan *ModEntityAPIImpl, size),
		size: size,
	}
}

// Get returns a pooled instance, or a fresh one if the pool is empty.
func (p *EntityPool) Get() *ModEntityAPIImpl {
	select {
	case entity := <-p.pool:
		return entity
	default:
		return &ModEntityAPIImpl{
			tags:          make(map[ecs.Entity][]string),
			ownedEntities: make(map[ecs.Entity]bool),
		}
	}
}

// Put resets entity and returns it to the pool, discarding it if full.
func (p *EntityPool) Put(entity *ModEntityAPIImpl) {
	for k := range entity.tags {
		delete(entity.tags, k)
	}
	for k := range entity.ownedEntities {
		delete(entity.ownedEntities, k)
	}

	select {
	case p.pool <- entity:
	default:
	}
}

// ComponentCache memoizes (entity, component type) -> handle lookups so a
// mod reading the same component repeatedly doesn't re-hit the registry's
// repository map every call.
type ComponentCache struct {
	mu     sync.RWMutex
	cache  map[cacheKey]ecs.ComponentHandle
	hits   int64
	misses int64
}

type cacheKey struct {
	entity        ecs.Entity
	componentType ecs.ComponentType
}

// NewComponentCache creates an empty cache.
func NewComponentCache() *ComponentCache {
	return &ComponentCache{
		cache: make(map[cacheKey]ecs.ComponentHandle),
	}
}

// Get returns the cached handle for (entity, componentType), if any.
func (c *ComponentCache) Get(entity ecs.Entity, componentType ecs.ComponentType) (ecs.ComponentHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := cacheKey{entity: entity, componentType: componentType}
	handle, exists := c.cache[key]

	if exists {
		c.hits++
	} else {
		c.misses++
	}

	return handle, exists
}

// Set stores handle for (entity, componentType).
func (c *ComponentCache) Set(entity ecs.Entity, componentType ecs.ComponentType, handle ecs.ComponentHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{entity: entity, componentType: componentType}
	c.cache[key] = handle
}

// Remove drops any cached handle for (entity, componentType).
func (c *ComponentCache) Remove(entity ecs.Entity, componentType ecs.ComponentType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{entity: entity, componentType: componentType}
	delete(c.cache, key)
}

// GetHitRate キャッシュヒット率を取得
func (c *ComponentCache) GetHitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

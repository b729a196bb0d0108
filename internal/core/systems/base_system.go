// Package systems provides the sample game systems driven by the ECS
// registry: Movement, Physics, Rendering, and Audio. Every system
// implements the System interface and runs single-threaded, in priority
// order, once per frame (spec's single-threaded design, carried from the
// core registry into the systems that drive it).
package systems

import (
	"time"

	"muscle-dreamer/internal/core/ecs"
)

// System is the uniform interface every game system implements. Update is
// called once per frame, in descending Priority order, by the owning game
// loop (see cmd/game).
type System interface {
	GetType() ecs.SystemType
	GetPriority() ecs.Priority
	GetRequiredComponents() []ecs.ComponentType
	Initialize(reg *ecs.Registry) error
	Update(reg *ecs.Registry, deltaTime float64) error
	Shutdown() error
	IsEnabled() bool
	SetEnabled(enabled bool)
	GetMetrics() *Metrics
}

// Metrics is the per-system execution telemetry a BaseSystem accumulates.
type Metrics struct {
	SystemType       ecs.SystemType
	ExecutionCount   int64
	TotalTime        int64
	AverageTime      int64
	MaxTime          int64
	MinTime          int64
	ErrorCount       int64
	LastExecution    int64
	EntitiesProcessed int64
}

// BaseSystem provides the bookkeeping shared by every system: priority,
// enabled state, metrics, and error tracking. No locking: registries and
// their systems are single-threaded by design.
type BaseSystem struct {
	systemType ecs.SystemType
	priority   ecs.Priority
	enabled    bool
	metrics    *Metrics

	errorHandler func(error)
	lastError    error
}

// System priority constants for the sample systems.
const (
	MovementSystemPriority  = ecs.PriorityHigh
	PhysicsSystemPriority   = ecs.PriorityHigh
	AISystemPriority        = ecs.PriorityNormal
	RenderingSystemPriority = ecs.PriorityLow
	AudioSystemPriority     = ecs.PriorityLow
)

// System type aliases for the sample systems.
const (
	MovementSystemType  = ecs.SystemTypeMovement
	PhysicsSystemType   = ecs.SystemTypePhysics
	AISystemType        = ecs.SystemTypeAI
	RenderingSystemType = ecs.SystemTypeRendering
	AudioSystemType     = ecs.SystemTypeAudio
)

// NewBaseSystem creates a new base system with the given type and priority.
func NewBaseSystem(systemType ecs.SystemType, priority ecs.Priority) *BaseSystem {
	return &BaseSystem{
		systemType: systemType,
		priority:   priority,
		enabled:    true,
		metrics: &Metrics{
			SystemType:    systemType,
			LastExecution: time.Now().UnixNano(),
		},
	}
}

func (bs *BaseSystem) GetType() ecs.SystemType { return bs.systemType }
func (bs *BaseSystem) GetPriority() ecs.Priority { return bs.priority }
func (bs *BaseSystem) SetPriority(priority ecs.Priority) { bs.priority = priority }

// GetRequiredComponents returns an empty slice; concrete systems override it.
func (bs *BaseSystem) GetRequiredComponents() []ecs.ComponentType { return nil }

// Initialize is a no-op hook concrete systems may override.
func (bs *BaseSystem) Initialize(reg *ecs.Registry) error { return nil }

// Shutdown is a no-op hook concrete systems may override.
func (bs *BaseSystem) Shutdown() error { return nil }

func (bs *BaseSystem) IsEnabled() bool          { return bs.enabled }
func (bs *BaseSystem) SetEnabled(enabled bool)  { bs.enabled = enabled }

// GetMetrics returns a copy of the system's accumulated metrics.
func (bs *BaseSystem) GetMetrics() *Metrics {
	m := *bs.metrics
	return &m
}

func (bs *BaseSystem) SetErrorHandler(handler func(error)) { bs.errorHandler = handler }

func (bs *BaseSystem) handleError(err error) {
	bs.lastError = err
	bs.metrics.ErrorCount++
	if bs.errorHandler != nil {
		bs.errorHandler(err)
	}
}

func (bs *BaseSystem) GetLastError() error { return bs.lastError }

// recordExecution folds one frame's elapsed time into the running metrics.
// Concrete systems call this at the end of their own Update.
func (bs *BaseSystem) recordExecution(start time.Time, entitiesProcessed int) {
	elapsed := time.Since(start).Nanoseconds()
	bs.metrics.ExecutionCount++
	bs.metrics.TotalTime += elapsed
	bs.metrics.LastExecution = start.UnixNano()
	bs.metrics.EntitiesProcessed = int64(entitiesProcessed)

	if bs.metrics.ExecutionCount > 0 {
		bs.metrics.AverageTime = bs.metrics.TotalTime / bs.metrics.ExecutionCount
	}
	if elapsed > bs.metrics.MaxTime {
		bs.metrics.MaxTime = elapsed
	}
	if bs.metrics.MinTime == 0 || elapsed < bs.metrics.MinTime {
		bs.metrics.MinTime = elapsed
	}
}

func (bs *BaseSystem) ResetMetrics() {
	bs.metrics = &Metrics{
		SystemType:    bs.systemType,
		LastExecution: time.Now().UnixNano(),
	}
}

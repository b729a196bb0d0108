package components

import (
	"math"
	"time"

	"muscle-dreamer/internal/core/ecs"
)

// AIStore backs the "ai" component type: patrol/chase/attack state machine
// data, grounded on the teacher's AIComponent but rewired onto columnar
// storage. PatrolPoints carries Value clone policy via PatrolPointList's
// CloneDeep so a templated entity gets its own patrol route.
type PatrolPointList []ecs.Vector2

func (l PatrolPointList) CloneDeep() PatrolPointList {
	out := make(PatrolPointList, len(l))
	copy(out, l)
	return out
}

type AIStore struct {
	State              *ecs.TypedColumn[AIState]
	Target             *ecs.TypedColumn[ecs.Entity]
	PatrolPoints       *ecs.TypedColumn[PatrolPointList]
	DetectionRadius    *ecs.TypedColumn[float64]
	AttackRange        *ecs.TypedColumn[float64]
	Speed              *ecs.TypedColumn[float64]
	Behavior           *ecs.TypedColumn[AIBehavior]
	LastStateChange    *ecs.TypedColumn[time.Time]
	currentPatrolIndex *ecs.TypedColumn[int]
}

// NewAIComponentType builds the schema and storage for "ai". AI requires a
// transform: an AI entity with no position to reason about is malformed.
func NewAIComponentType() (*ecs.ComponentTypeSchema, *AIStore) {
	store := &AIStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID:          ecs.ComponentTypeAI,
		RequiredTypeIDs: []ecs.ComponentType{ecs.ComponentTypeTransform},
		Properties: []ecs.PropertySchema{
			{Name: "state", ValueKind: ecs.ValueEnum, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "target", ValueKind: ecs.ValueReferenceSet, ClonePolicy: ecs.CloneDisabled},
			{Name: "patrol_points", ValueKind: ecs.ValueValueSet, ClonePolicy: ecs.CloneValue},
			{Name: "detection_radius", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "attack_range", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "speed", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "behavior", ValueKind: ecs.ValueEnum, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "last_state_change", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneDisabled},
			{Name: "current_patrol_index", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneDisabled, Shareable: true},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "state":
				store.State = ecs.NewTypedColumn[AIState](capacity, p.ValueKind, p.ClonePolicy, func() AIState { return AIStateIdle }, p.Shareable, nil)
				return store.State
			case "target":
				store.Target = ecs.NewTypedColumn[ecs.Entity](capacity, p.ValueKind, p.ClonePolicy, func() ecs.Entity { return ecs.InvalidEntity }, p.Shareable, nil)
				return store.Target
			case "patrol_points":
				store.PatrolPoints = ecs.NewTypedColumn[PatrolPointList](capacity, p.ValueKind, p.ClonePolicy, func() PatrolPointList { return nil }, p.Shareable, nil)
				return store.PatrolPoints
			case "detection_radius":
				store.DetectionRadius = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 50 }, p.Shareable, nil)
				return store.DetectionRadius
			case "attack_range":
				store.AttackRange = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 10 }, p.Shareable, nil)
				return store.AttackRange
			case "speed":
				store.Speed = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 100 }, p.Shareable, nil)
				return store.Speed
			case "behavior":
				store.Behavior = ecs.NewTypedColumn[AIBehavior](capacity, p.ValueKind, p.ClonePolicy, func() AIBehavior { return AIBehaviorNeutral }, p.Shareable, nil)
				return store.Behavior
			case "last_state_change":
				store.LastStateChange = ecs.NewTypedColumn[time.Time](capacity, p.ValueKind, p.ClonePolicy, func() time.Time { return time.Time{} }, p.Shareable, nil)
				return store.LastStateChange
			case "current_patrol_index":
				store.currentPatrolIndex = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 0 }, p.Shareable, nil)
				return store.currentPatrolIndex
			}
			return nil
		},
	}
	return schema, store
}

// SetState transitions the AI state, recording the transition time.
func (s *AIStore) SetState(h ecs.ComponentHandle, state AIState) {
	slot := h.RepoSlot
	if s.State.Get(slot) != state {
		s.State.Set(slot, state)
		s.LastStateChange.Set(slot, time.Now())
	}
}

func (s *AIStore) SetTarget(h ecs.ComponentHandle, target ecs.Entity) { s.Target.Set(h.RepoSlot, target) }
func (s *AIStore) ClearTarget(h ecs.ComponentHandle)                  { s.Target.Set(h.RepoSlot, ecs.InvalidEntity) }

func (s *AIStore) SetPatrolPoints(h ecs.ComponentHandle, points []ecs.Vector2) {
	list := make(PatrolPointList, len(points))
	copy(list, points)
	s.PatrolPoints.Set(h.RepoSlot, list)
	s.currentPatrolIndex.Set(h.RepoSlot, 0)
}

// NextPatrolPoint returns the next patrol point and advances the index.
func (s *AIStore) NextPatrolPoint(h ecs.ComponentHandle) ecs.Vector2 {
	slot := h.RepoSlot
	points := s.PatrolPoints.Get(slot)
	if len(points) == 0 {
		return ecs.Vector2{}
	}
	idx := s.currentPatrolIndex.Get(slot)
	point := points[idx]
	s.currentPatrolIndex.Set(slot, (idx+1)%len(points))
	return point
}

func (s *AIStore) SetBehavior(h ecs.ComponentHandle, behavior AIBehavior) {
	s.Behavior.Set(h.RepoSlot, behavior)
}

func (s *AIStore) IsInDetectionRange(h ecs.ComponentHandle, aiPos, targetPos ecs.Vector2) bool {
	return distance(aiPos, targetPos) <= s.DetectionRadius.Get(h.RepoSlot)
}

func (s *AIStore) IsInAttackRange(h ecs.ComponentHandle, aiPos, targetPos ecs.Vector2) bool {
	return distance(aiPos, targetPos) <= s.AttackRange.Get(h.RepoSlot)
}

func distance(a, b ecs.Vector2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

package components

import (
	"muscle-dreamer/internal/core/ecs"
)

// EnergyStore backs the "energy" component type: a regenerating resource
// pool, the same shape as health but without damage/status semantics.
type EnergyStore struct {
	Current    *ecs.TypedColumn[float64]
	Max        *ecs.TypedColumn[float64]
	RegenRate  *ecs.TypedColumn[float64]
}

func NewEnergyComponentType() (*ecs.ComponentTypeSchema, *EnergyStore) {
	store := &EnergyStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeEnergy,
		Properties: []ecs.PropertySchema{
			{Name: "current", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "max", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "regen_rate", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "current":
				store.Current = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 100 }, p.Shareable, nil)
				return store.Current
			case "max":
				store.Max = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 100 }, p.Shareable, nil)
				return store.Max
			case "regen_rate":
				store.RegenRate = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 5 }, p.Shareable, nil)
				return store.RegenRate
			}
			return nil
		},
	}
	return schema, store
}

// Consume spends amount of energy, reporting whether enough was available.
func (s *EnergyStore) Consume(h ecs.ComponentHandle, amount float64) bool {
	slot := h.RepoSlot
	current := s.Current.Get(slot)
	if current < amount {
		return false
	}
	s.Current.Set(slot, current-amount)
	return true
}

// Regenerate advances the pool by regen_rate * dt, capped at max.
func (s *EnergyStore) Regenerate(h ecs.ComponentHandle, dt float64) {
	slot := h.RepoSlot
	current := s.Current.Get(slot)
	max := s.Max.Get(slot)
	current += s.RegenRate.Get(slot) * dt
	if current > max {
		current = max
	}
	s.Current.Set(slot, current)
}

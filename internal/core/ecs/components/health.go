package components

import (
	"time"

	"muscle-dreamer/internal/core/ecs"
)

// StatusEffectList is the slice backing the "status_effects" property. It
// implements ecs.DeepCloner so a Value clone_into produces an independent
// copy rather than aliasing the template's backing array.
type StatusEffectList []StatusEffect

func (l StatusEffectList) CloneDeep() StatusEffectList {
	out := make(StatusEffectList, len(l))
	copy(out, l)
	return out
}

// HealthStore backs the "health" component type: current/max health,
// shield, invincibility, regeneration, and a list of timed status effects.
type HealthStore struct {
	CurrentHealth    *ecs.TypedColumn[int]
	MaxHealth        *ecs.TypedColumn[int]
	Shield           *ecs.TypedColumn[int]
	IsInvincible     *ecs.TypedColumn[bool]
	LastDamageTime   *ecs.TypedColumn[time.Time]
	RegenerationRate *ecs.TypedColumn[float64]
	StatusEffects    *ecs.TypedColumn[StatusEffectList]
}

// NewHealthComponentType builds the schema and storage for "health".
func NewHealthComponentType() (*ecs.ComponentTypeSchema, *HealthStore) {
	store := &HealthStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeHealth,
		Properties: []ecs.PropertySchema{
			{Name: "current_health", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "max_health", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "shield", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "is_invincible", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "last_damage_time", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneDisabled},
			{Name: "regeneration_rate", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "status_effects", ValueKind: ecs.ValueValueSet, ClonePolicy: ecs.CloneValue},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "current_health":
				store.CurrentHealth = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 0 }, p.Shareable, nil)
				return store.CurrentHealth
			case "max_health":
				store.MaxHealth = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 1 }, p.Shareable, nil)
				return store.MaxHealth
			case "shield":
				store.Shield = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 0 }, p.Shareable, nil)
				return store.Shield
			case "is_invincible":
				store.IsInvincible = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.IsInvincible
			case "last_damage_time":
				store.LastDamageTime = ecs.NewTypedColumn[time.Time](capacity, p.ValueKind, p.ClonePolicy, func() time.Time { return time.Time{} }, p.Shareable, nil)
				return store.LastDamageTime
			case "regeneration_rate":
				store.RegenerationRate = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.RegenerationRate
			case "status_effects":
				store.StatusEffects = ecs.NewTypedColumn[StatusEffectList](capacity, p.ValueKind, p.ClonePolicy, func() StatusEffectList { return nil }, p.Shareable, nil)
				return store.StatusEffects
			}
			return nil
		},
	}
	return schema, store
}

// NewHealth initialises a just-added health component's max/current health
// to maxHealth (the schema default is a bare 1/0, since a single literal
// default can't depend on caller-supplied max health).
func (s *HealthStore) NewHealth(h ecs.ComponentHandle, maxHealth int) {
	s.MaxHealth.Set(h.RepoSlot, maxHealth)
	s.CurrentHealth.Set(h.RepoSlot, maxHealth)
}

// TakeDamage applies damage (after shield absorption) and returns the
// actual damage dealt.
func (s *HealthStore) TakeDamage(h ecs.ComponentHandle, damage int) int {
	slot := h.RepoSlot
	if s.IsInvincible.Get(slot) || damage <= 0 {
		return 0
	}
	actual := damage
	if shield := s.Shield.Get(slot); shield > 0 {
		if shield >= damage {
			s.Shield.Set(slot, shield-damage)
			return 0
		}
		actual = damage - shield
		s.Shield.Set(slot, 0)
	}
	current := s.CurrentHealth.Get(slot)
	if current < actual {
		actual = current
	}
	current -= actual
	if current < 0 {
		current = 0
	}
	s.CurrentHealth.Set(slot, current)
	s.LastDamageTime.Set(slot, time.Now())
	return actual
}

// Heal restores health, capped at max, and returns the actual amount healed.
func (s *HealthStore) Heal(h ecs.ComponentHandle, amount int) int {
	if amount <= 0 {
		return 0
	}
	slot := h.RepoSlot
	current := s.CurrentHealth.Get(slot)
	max := s.MaxHealth.Get(slot)
	actual := amount
	if current+amount > max {
		actual = max - current
	}
	s.CurrentHealth.Set(slot, current+actual)
	return actual
}

// IsDead reports whether current health has reached zero.
func (s *HealthStore) IsDead(h ecs.ComponentHandle) bool {
	return s.CurrentHealth.Get(h.RepoSlot) <= 0
}

// AddStatusEffect upserts a status effect by type.
func (s *HealthStore) AddStatusEffect(h ecs.ComponentHandle, effect StatusEffect) {
	slot := h.RepoSlot
	effects := s.StatusEffects.Get(slot)
	for i, existing := range effects {
		if existing.Type == effect.Type {
			effects[i] = effect
			s.StatusEffects.Set(slot, effects)
			return
		}
	}
	effect.StartTime = time.Now()
	s.StatusEffects.Set(slot, append(effects, effect))
}

// UpdateStatusEffects ticks every active status effect's duration down by
// dt and drops any that have expired.
func (s *HealthStore) UpdateStatusEffects(h ecs.ComponentHandle, dt float64) {
	slot := h.RepoSlot
	effects := s.StatusEffects.Get(slot)
	remaining := make(StatusEffectList, 0, len(effects))
	for _, effect := range effects {
		effect.Duration -= dt
		if effect.Duration > 0 {
			remaining = append(remaining, effect)
		}
	}
	s.StatusEffects.Set(slot, remaining)
}

func (s *HealthStore) HasStatusEffect(h ecs.ComponentHandle, t StatusType) bool {
	for _, effect := range s.StatusEffects.Get(h.RepoSlot) {
		if effect.Type == t {
			return true
		}
	}
	return false
}

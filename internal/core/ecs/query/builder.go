package query

import (
	"fmt"
	"strings"

	"muscle-dreamer/internal/core/ecs"
)

// Builder assembles a required/optional/excluded component-type set and
// turns it into an *ecs.Iterator (spec §4.6) against a live registry. It is
// deliberately thin: the registry owns iteration order and the
// smallest-repository-first primary-type choice, the builder only decides
// which types participate.
type Builder struct {
	required ComponentBitSet
	optional ComponentBitSet
	excluded ComponentBitSet

	requiredTypes []ecs.ComponentType
	optionalTypes []ecs.ComponentType
	excludedTypes []ecs.ComponentType
}

// NewBuilder returns an empty query builder.
func NewBuilder() *Builder {
	return &Builder{
		required: NewComponentBitSet(),
		optional: NewComponentBitSet(),
		excluded: NewComponentBitSet(),
	}
}

// With marks componentType as required: only entities carrying it are
// visited.
func (b *Builder) With(componentType ecs.ComponentType) *Builder {
	if !b.required.Has(componentType) {
		b.requiredTypes = append(b.requiredTypes, componentType)
	}
	b.required = b.required.Set(componentType)
	return b
}

// WithAll is With applied to every element of componentTypes.
func (b *Builder) WithAll(componentTypes ...ecs.ComponentType) *Builder {
	for _, ct := range componentTypes {
		b.With(ct)
	}
	return b
}

// WithOptional binds componentType on matched entities when present,
// without requiring it — the handle may come back IsZero.
func (b *Builder) WithOptional(componentType ecs.ComponentType) *Builder {
	if !b.optional.Has(componentType) {
		b.optionalTypes = append(b.optionalTypes, componentType)
	}
	b.optional = b.optional.Set(componentType)
	return b
}

// Without excludes entities carrying componentType from the result, applied
// as a post-filter over the iterator since the registry's Iterate has no
// native exclusion concept.
func (b *Builder) Without(componentType ecs.ComponentType) *Builder {
	if !b.excluded.Has(componentType) {
		b.excludedTypes = append(b.excludedTypes, componentType)
	}
	b.excluded = b.excluded.Set(componentType)
	return b
}

// IsValid rejects a builder that both requires and excludes the same
// component type, which could never match any entity.
func (b *Builder) IsValid() bool {
	return !b.required.Intersects(b.excluded)
}

// RequiredComponents returns the required-type bitset.
func (b *Builder) RequiredComponents() ComponentBitSet { return b.required }

// ExcludedComponents returns the excluded-type bitset.
func (b *Builder) ExcludedComponents() ComponentBitSet { return b.excluded }

// OptionalComponents returns the optional-type bitset.
func (b *Builder) OptionalComponents() ComponentBitSet { return b.optional }

// Build runs the query against reg, returning a Cursor positioned before the
// first match. Returns an error if the builder's constraints are
// contradictory.
func (b *Builder) Build(reg *ecs.Registry) (*Cursor, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("query: component type required and excluded simultaneously")
	}
	return &Cursor{
		iter:          reg.Iterate(b.requiredTypes, b.optionalTypes),
		excludedTypes: b.excludedTypes,
		registry:      reg,
	}, nil
}

// String renders a debug-friendly description of the builder's constraints.
func (b *Builder) String() string {
	var parts []string
	if b.required.Count() > 0 {
		parts = append(parts, fmt.Sprintf("required:[%s]", formatComponentTypes(b.requiredTypes)))
	}
	if b.optional.Count() > 0 {
		parts = append(parts, fmt.Sprintf("optional:[%s]", formatComponentTypes(b.optionalTypes)))
	}
	if b.excluded.Count() > 0 {
		parts = append(parts, fmt.Sprintf("excluded:[%s]", formatComponentTypes(b.excludedTypes)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatComponentTypes(types []ecs.ComponentType) string {
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = string(t)
	}
	return strings.Join(strs, ",")
}

// Cursor wraps an *ecs.Iterator with the exclusion post-filter a Builder
// may have accumulated via Without.
type Cursor struct {
	iter          *ecs.Iterator
	registry      *ecs.Registry
	excludedTypes []ecs.ComponentType
}

// Next advances the cursor to the next matching entity, skipping any entity
// that carries one of the excluded component types. Returns false once
// exhausted.
func (c *Cursor) Next() bool {
	for c.iter.Advance() {
		e := c.iter.Entity()
		excluded := false
		for _, t := range c.excludedTypes {
			if _, ok := c.registry.GetComponent(t, e); ok {
				excluded = true
				break
			}
		}
		if !excluded {
			return true
		}
	}
	return false
}

// Entity returns the entity the cursor is currently positioned on.
func (c *Cursor) Entity() ecs.Entity { return c.iter.Entity() }

// Handle returns the currently bound handle for t (required or optional).
func (c *Cursor) Handle(t ecs.ComponentType) ecs.ComponentHandle { return c.iter.Handle(t) }

// Reset rewinds the cursor to the start of its underlying iterator.
func (c *Cursor) Reset() { c.iter.Reset() }

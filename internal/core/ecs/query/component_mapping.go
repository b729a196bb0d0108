package query

import (
	"muscle-dreamer/internal/core/ecs"
)

// GetComponentTypeFromPosition returns the component type registered at bit
// position pos, or ecs.InvalidComponentType if nothing occupies it.
func GetComponentTypeFromPosition(pos int) ecs.ComponentType {
	for ct, p := range componentTypeToBitPosition {
		if p == pos {
			return ct
		}
	}
	return ecs.InvalidComponentType
}

// RegisterComponentType binds a component type to a bit position beyond the
// built-in set, so external collaborators (mod scripts, the Lua bridge) that
// introduce their own component types can still be expressed as a
// ComponentBitSet. Panics on a conflicting re-registration, since that
// indicates two collaborators picked the same slot.
func RegisterComponentType(ct ecs.ComponentType, position int) {
	if position < 0 || position >= 64 {
		panic("component bit position must be between 0 and 63")
	}
	if existingPos, exists := componentTypeToBitPosition[ct]; exists && existingPos != position {
		panic("component type already registered with different position")
	}
	if existingCT := GetComponentTypeFromPosition(position); existingCT != ecs.InvalidComponentType && existingCT != ct {
		panic("bit position already used by different component type")
	}
	componentTypeToBitPosition[ct] = position
}

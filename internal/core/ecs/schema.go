package ecs

// ValueKind enumerates the closed set of declared property value kinds a
// schema may use (spec §6).
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueI8
	ValueU8
	ValueI16
	ValueI32
	ValueI64
	ValueF32
	ValueF64
	ValueChar
	ValueEnum
	ValueObject
	ValueValueSet
	ValueValueMap
	ValueReferenceSet
	ValueReferenceMap
	ValueReferenceList
	ValueCustom
)

// shareableKinds are the value kinds a column may legally declare
// shareable=true for — primitive, fixed-size kinds where a reusable scratch
// value makes sense. Requesting shareable on anything else is a
// MalformedSchema error at repository construction.
var shareableKinds = map[ValueKind]bool{
	ValueBool: true, ValueI8: true, ValueU8: true, ValueI16: true,
	ValueI32: true, ValueI64: true, ValueF32: true, ValueF64: true,
	ValueChar: true, ValueEnum: true,
}

// ClonePolicy enumerates the closed set of clone_into behaviors (spec §4.1, §6).
type ClonePolicy int

const (
	CloneValue ClonePolicy = iota
	CloneReference
	CloneDisabled
	CloneInvokeIntrinsic
)

// DefaultDescriptor supplies the default value for a declared property. It
// is a closed sum: exactly one of the fields below is meaningful, selected
// by the property's ValueKind.
type DefaultDescriptor struct {
	Literal         interface{}      // primitive literal default
	EnumOrdinal     int32            // default ordinal for Enum kinds
	IsNullReference bool             // "null" marker for reference kinds
	Factory         func() interface{} // factory for custom/aggregate kinds
	ZeroContainer   bool             // "zero/empty" for container kinds
}

// PropertySchema describes one declared property of a component type.
type PropertySchema struct {
	Name        string
	ValueKind   ValueKind
	Default     DefaultDescriptor
	ClonePolicy ClonePolicy
	Shareable   bool
}

// ComponentTypeSchema is supplied by the external generator/reflection
// layer (spec §1, §6): the core never inspects how it was produced, only
// what it declares. newColumn builds the concrete storage column for one
// declared property; createHandle optionally builds a per-type typed
// accessor over a (repository, slot) pair for generated proxy code.
type ComponentTypeSchema struct {
	TypeID          ComponentType
	RequiredTypeIDs []ComponentType
	Properties      []PropertySchema

	NewColumn func(p PropertySchema, capacity int) Column

	CreateHandle func(repo *Repository, slot uint32) interface{}
}

// validate enforces the MalformedSchema contract of spec §7: duplicate
// property names, or shareable requested on a kind that cannot be shared.
func (s *ComponentTypeSchema) validate() error {
	seen := make(map[string]bool, len(s.Properties))
	for _, p := range s.Properties {
		if seen[p.Name] {
			return NewMalformedSchemaError("duplicate property name " + p.Name + " in schema " + string(s.TypeID))
		}
		seen[p.Name] = true
		if p.Shareable && !shareableKinds[p.ValueKind] {
			return NewMalformedSchemaError("property " + p.Name + " requests shareable on a non-shareable value kind")
		}
	}
	if s.NewColumn == nil {
		return NewMalformedSchemaError("schema " + string(s.TypeID) + " has no column factory")
	}
	return nil
}

// DecoratedColumnFactory is supplied by a caller decorating a repository at
// runtime (spec §6, §4.3). The repository holds only a weak reference to
// the column this produces; the caller holds the strong reference returned
// from Repository.Decorate.
type DecoratedColumnFactory interface {
	CreateColumn(initialCapacity int) Column
	DefaultInit(col Column, slot uint32)
	CloneSlot(col Column, src, dst uint32)
}

package ecs

// Iterator implements spec §4.6: it walks entities having every required
// component type (and optionally binds a set of optional types that may be
// absent or dead), driving over the required type whose repository has the
// smallest cursor at construction time. That primary-type choice is fixed
// for the iterator's lifetime and never re-picked, per spec §9.
type Iterator struct {
	registry *Registry
	required []ComponentType
	optional []ComponentType

	primary     ComponentType
	primaryRepo *Repository

	i uint32

	handles map[ComponentType]ComponentHandle

	structuralModAtReset uint64
}

func newIterator(reg *Registry, required, optional []ComponentType) *Iterator {
	it := &Iterator{
		registry: reg,
		required: required,
		optional: optional,
		handles:  make(map[ComponentType]ComponentHandle, len(required)+len(optional)),
	}
	for _, t := range optional {
		if reg.repos[t] == nil {
			it.primaryRepo = nil
			return it
		}
	}
	if len(required) == 0 {
		return it
	}
	var minCursor uint32 = ^uint32(0)
	for _, t := range required {
		repo := reg.repos[t]
		if repo == nil {
			it.primaryRepo = nil
			return it
		}
		if repo.cursor < minCursor {
			minCursor = repo.cursor
			it.primary = t
			it.primaryRepo = repo
		}
	}
	it.structuralModAtReset = reg.structuralMod
	return it
}

// Reset restores i = 0; handles are not updated until the next Advance
// (spec §4.6 reset).
func (it *Iterator) Reset() {
	it.i = 0
	it.structuralModAtReset = it.registry.structuralMod
}

// Advance implements spec §4.6's advance semantics. It returns false when
// required is empty (IteratorMisuse, not an error per spec §7), or when the
// primary repository is exhausted. While advancing, every other required
// type is probed on the candidate entity; the first required type that is
// absent rejects the candidate and the scan continues. Once all required
// types match, optional types are bound (possibly to the dead sentinel
// handle) and Advance returns true.
func (it *Iterator) Advance() bool {
	if it.primaryRepo == nil {
		return false
	}
	if it.registry.structuralMod != it.structuralModAtReset {
		panic(NewIteratorMisuseError("registry mutated during iteration"))
	}
	for it.i < it.primaryRepo.cursor {
		s := it.i
		it.i++
		e := it.primaryRepo.repoSlotToEntitySlot[s]
		if e == 0 {
			continue
		}
		matched := true
		for _, t := range it.required {
			if t == it.primary {
				it.handles[t] = ComponentHandle{Type: t, RepoSlot: s, CompID: it.primaryRepo.idColumn.Get(s), EntitySlot: e}
				continue
			}
			repo := it.registry.repos[t]
			sp := repo.entitySlotToRepoSlot[e]
			if sp == 0 {
				matched = false
				break
			}
			it.handles[t] = ComponentHandle{Type: t, RepoSlot: sp, CompID: repo.idColumn.Get(sp), EntitySlot: e}
		}
		if !matched {
			continue
		}
		for _, t := range it.optional {
			repo := it.registry.repos[t]
			sp := repo.entitySlotToRepoSlot[e]
			if sp == 0 {
				it.handles[t] = ComponentHandle{}
			} else {
				it.handles[t] = ComponentHandle{Type: t, RepoSlot: sp, CompID: repo.idColumn.Get(sp), EntitySlot: e}
			}
		}
		return true
	}
	return false
}

// Handle returns the currently bound handle for t (required or optional).
// Callers must check IsZero()/IsAlive before using an optional handle.
func (it *Iterator) Handle(t ComponentType) ComponentHandle {
	return it.handles[t]
}

// Entity returns the entity slot the iterator is currently positioned on,
// reconstructed from the primary handle's entity slot and the live
// registry's id column.
func (it *Iterator) Entity() Entity {
	h := it.handles[it.primary]
	if h.IsZero() {
		return Entity{}
	}
	return Entity{Slot: h.EntitySlot, ID: it.registry.entityIDColumn[h.EntitySlot]}
}

package ecs

import (
	"sort"
	"weak"
)

// decoratedColumnEntry pairs a caller-supplied DecoratedColumnFactory
// with a weak.Pointer to the box holding the column it produced. The
// repository only ever reaches the column through the weak pointer; once
// the caller drops its last strong reference to the box, the next
// compaction observes the dead weak pointer and drops the column
// (spec §4.3).
type decoratedColumnEntry struct {
	factory DecoratedColumnFactory
	weak    weak.Pointer[columnBox]
}

// columnBox is the object a decorated column's weak/strong handle pair
// actually points at. Column is an interface value (not itself a pointer
// type in general), so weak.Make needs a boxed pointer to take a weak
// reference to.
type columnBox struct {
	col Column
}

// DecoratedColumnHandle is the strong handle returned by Repository.Decorate.
// As long as a caller holds one, the column it wraps survives compaction;
// dropping every strong handle (Undecorate, or simply letting it go out of
// scope) makes the column eligible for collection at the next compaction.
type DecoratedColumnHandle struct {
	box *columnBox
}

// Column returns the decorated column this handle keeps alive.
func (h *DecoratedColumnHandle) Column() Column {
	if h == nil || h.box == nil {
		return nil
	}
	return h.box.col
}

// Repository owns all components of one type and mediates their lifecycle
// (spec §3, §4.2). Arrays are indexed from 1; slot 0 is the reserved
// sentinel (global invariant 1).
type Repository struct {
	typeID ComponentType

	entitySlotToRepoSlot []uint32 // index = entity slot; 0 = type not attached
	repoSlotToEntitySlot []uint32 // inverse; index 0 is the sentinel

	idColumn      *TypedColumn[uint32]
	versionColumn *TypedColumn[int32]
	ownerColumn   *TypedColumn[OwnershipRecord]

	declaredColumns []Column
	declaredNames   []string

	decoratedColumns []decoratedColumnEntry

	requiredTypes []ComponentType

	cursor   uint32 // next free repo slot; always >= 1
	capacity uint32

	nextID      uint32
	nextVersion int32

	schema   *ComponentTypeSchema
	registry *Registry
}

func newRepository(registry *Registry, schema *ComponentTypeSchema) *Repository {
	initialCapacity := uint32(registry.config.InitialRepoCapacity)
	r := &Repository{
		typeID:               schema.TypeID,
		entitySlotToRepoSlot: make([]uint32, 1),
		repoSlotToEntitySlot: make([]uint32, initialCapacity),
		cursor:               1,
		capacity:             initialCapacity,
		nextID:               1,
		nextVersion:          0,
		requiredTypes:        append([]ComponentType(nil), schema.RequiredTypeIDs...),
		schema:               schema,
		registry:             registry,
	}
	r.idColumn = NewTypedColumn[uint32](int(initialCapacity), ValueU8, CloneDisabled, func() uint32 { return 0 }, false, nil)
	r.versionColumn = NewTypedColumn[int32](int(initialCapacity), ValueI32, CloneDisabled, func() int32 { return -1 }, false, nil)
	r.ownerColumn = NewTypedColumn[OwnershipRecord](int(initialCapacity), ValueObject, CloneDisabled, func() OwnershipRecord { return OwnershipRecord{} }, false, nil)

	sorted := append([]PropertySchema(nil), schema.Properties...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	r.declaredColumns = make([]Column, len(sorted))
	r.declaredNames = make([]string, len(sorted))
	for i, p := range sorted {
		r.declaredColumns[i] = schema.NewColumn(p, int(initialCapacity))
		r.declaredNames[i] = p.Name
	}
	return r
}

// allColumns returns every column that must grow, compact, and
// default-init in lockstep: id, version, owner, declared, and any
// decorated column whose weak reference still upgrades.
func (r *Repository) allColumns() []Column {
	cols := make([]Column, 0, 3+len(r.declaredColumns)+len(r.decoratedColumns))
	cols = append(cols, r.idColumn, r.versionColumn, r.ownerColumn)
	cols = append(cols, r.declaredColumns...)
	for _, d := range r.decoratedColumns {
		if box := d.weak.Value(); box != nil {
			cols = append(cols, box.col)
		}
	}
	return cols
}

func (r *Repository) repoSlotOf(entitySlot uint32) uint32 {
	if entitySlot >= uint32(len(r.entitySlotToRepoSlot)) {
		return 0
	}
	return r.entitySlotToRepoSlot[entitySlot]
}

// IsAlive reports whether h is a live component handle into this
// repository: repo_slot != 0, repo_slot < cursor, and the id column still
// agrees (spec §3 Component liveness contract).
func (r *Repository) IsAlive(h ComponentHandle) bool {
	return h.RepoSlot != 0 && h.RepoSlot < r.cursor && r.idColumn.Get(h.RepoSlot) == h.CompID
}

func (r *Repository) growTo(newCap uint32) {
	for _, col := range r.allColumns() {
		col.Resize(int(newCap))
	}
	grown := make([]uint32, newCap)
	copy(grown, r.repoSlotToEntitySlot)
	r.repoSlotToEntitySlot = grown
	r.capacity = newCap
}

func (r *Repository) allocSlot() uint32 {
	s := r.cursor
	r.cursor++
	if r.cursor > r.capacity {
		r.growTo(uint32(float64(r.capacity)*r.registry.config.GrowthFactor) + 1)
	}
	return s
}

// ExpandEntityIndex ensures entity_slot_to_repo_slot has at least n
// entries (spec §4.2 expand_entity_index), called whenever the entity
// table itself grows.
func (r *Repository) ExpandEntityIndex(n int) {
	if n <= len(r.entitySlotToRepoSlot) {
		return
	}
	grown := make([]uint32, n)
	copy(grown, r.entitySlotToRepoSlot)
	r.entitySlotToRepoSlot = grown
}

// Add implements spec §4.2 add: if a component of this type is already
// attached, it is removed first; a fresh slot is allocated, id/version are
// assigned, every column is default-initialised, and every required type
// not already present is recursively added with its owner set to the new
// component.
func (r *Repository) Add(entitySlot uint32) (ComponentHandle, error) {
	if r.repoSlotOf(entitySlot) != 0 {
		r.Remove(entitySlot)
	}
	s := r.allocSlot()
	r.entitySlotToRepoSlot[entitySlot] = s
	r.repoSlotToEntitySlot[s] = entitySlot

	for _, col := range r.allColumns() {
		col.DefaultInit(s)
	}

	id := r.nextID
	r.nextID++
	r.idColumn.Set(s, id)

	version := r.nextVersion & 0x7fff_ffff
	r.nextVersion++
	r.versionColumn.Set(s, version)

	r.ownerColumn.Set(s, OwnershipRecord{})

	handle := ComponentHandle{Type: r.typeID, RepoSlot: s, CompID: id, EntitySlot: entitySlot}
	r.registry.bumpStructural()

	for _, req := range r.requiredTypes {
		reqRepo := r.registry.repos[req]
		if reqRepo == nil {
			continue
		}
		if reqRepo.repoSlotOf(entitySlot) == 0 {
			reqHandle, err := reqRepo.Add(entitySlot)
			if err != nil {
				return handle, err
			}
			r.registry.SetOwner(
				OwnableRef{Kind: OwnableComponent, Component: reqHandle},
				OwnableRef{Kind: OwnableComponent, Component: handle},
			)
		}
	}
	return handle, nil
}

// AddFromTemplate implements spec §4.2 add_from_template: the template
// must be alive and of this repository's type; add() runs first, then
// every declared column (not decorated columns) is cloned from the
// template's slot according to its clone policy.
func (r *Repository) AddFromTemplate(entitySlot uint32, template ComponentHandle) (ComponentHandle, error) {
	if template.Type != r.typeID {
		return ComponentHandle{}, NewTypeMismatchError(string(r.typeID), string(template.Type))
	}
	if !r.IsAlive(template) {
		return ComponentHandle{}, NewInvalidHandleError("add_from_template: template handle is not alive")
	}
	handle, err := r.Add(entitySlot)
	if err != nil {
		return handle, err
	}
	for _, col := range r.declaredColumns {
		col.CloneInto(template.RepoSlot, col, handle.RepoSlot)
	}
	return handle, nil
}

// Remove implements spec §4.2 remove: revokes ownership (cascading to
// anything this component owned), then clears the id/slot mappings. Column
// data at the freed slot is left in place — it becomes logically dead, not
// defaulted, until the next add() or compaction.
func (r *Repository) Remove(entitySlot uint32) bool {
	s := r.repoSlotOf(entitySlot)
	if s == 0 {
		return false
	}
	self := OwnableRef{Kind: OwnableComponent, Component: ComponentHandle{
		Type: r.typeID, RepoSlot: s, CompID: r.idColumn.Get(s), EntitySlot: entitySlot,
	}}
	r.registry.removeOwnable(self)

	r.idColumn.Set(s, 0)
	r.repoSlotToEntitySlot[s] = 0
	r.entitySlotToRepoSlot[entitySlot] = 0
	r.registry.bumpStructural()
	return true
}

// Get implements spec §4.2 get: returns the live handle attached to
// entitySlot, if any.
func (r *Repository) Get(entitySlot uint32) (ComponentHandle, bool) {
	s := r.repoSlotOf(entitySlot)
	if s == 0 {
		return ComponentHandle{}, false
	}
	return ComponentHandle{Type: r.typeID, RepoSlot: s, CompID: r.idColumn.Get(s), EntitySlot: entitySlot}, true
}

// Version returns the version of repo slot s.
func (r *Repository) Version(s uint32) int32 { return r.versionColumn.Get(s) }

// IncrementVersion bumps the version of a live slot; on a dead handle it
// is silently ignored (spec §7 InvalidHandle contract: "update_version on
// a dead handle is silently ignored").
func (r *Repository) IncrementVersion(s uint32) {
	if s == 0 || s >= r.cursor || r.idColumn.Get(s) == 0 {
		return
	}
	r.versionColumn.Set(s, r.nextVersion&0x7fff_ffff)
	r.nextVersion++
}

// ID returns the comp_id of repo slot s.
func (r *Repository) ID(s uint32) uint32 { return r.idColumn.Get(s) }

// Decorate implements spec §4.2/§4.3 decorate: allocates a new column
// sized for the repository's current capacity, default-initialises every
// live slot, and registers it under a weak reference. The strong handle
// returned here is the caller's only way to keep the column alive.
func (r *Repository) Decorate(factory DecoratedColumnFactory) *DecoratedColumnHandle {
	col := factory.CreateColumn(int(r.capacity))
	for s := uint32(1); s < r.cursor; s++ {
		if r.repoSlotToEntitySlot[s] != 0 {
			factory.DefaultInit(col, s)
		}
	}
	box := &columnBox{col: col}
	r.decoratedColumns = append(r.decoratedColumns, decoratedColumnEntry{
		factory: factory,
		weak:    weak.Make(box),
	})
	return &DecoratedColumnHandle{box: box}
}

// Undecorate drops the caller's strong reference. The repository itself is
// not mutated synchronously (spec §4.3): the column is dropped lazily, the
// next time compaction observes the weak reference can no longer upgrade.
func (r *Repository) Undecorate(h *DecoratedColumnHandle) {
	if h == nil {
		return
	}
	h.box = nil
}

// Compact implements spec §4.2's repository compaction algorithm and
// §4.2's "copy-range detail": live components are re-densified into slots
// 1..cursor in entity order, decorated columns whose weak reference can no
// longer upgrade are dropped, and capacity shrinks if occupancy falls
// below 60%. entityOldToNew is the permutation produced by the whole-table
// compaction that is currently in progress (spec §4.5 compact).
func (r *Repository) Compact(entityOldToNew []uint32, newEntityCount uint32) {
	type liveSlot struct {
		oldSlot       uint32
		oldEntitySlot uint32
	}
	live := make([]liveSlot, 0, r.cursor)
	for s := uint32(1); s < r.cursor; s++ {
		e := r.repoSlotToEntitySlot[s]
		if e == 0 {
			continue
		}
		live = append(live, liveSlot{oldSlot: s, oldEntitySlot: e})
	}
	sort.Slice(live, func(i, j int) bool { return live[i].oldEntitySlot < live[j].oldEntitySlot })

	kept := r.decoratedColumns[:0]
	for _, d := range r.decoratedColumns {
		if d.weak.Value() != nil {
			kept = append(kept, d)
		}
	}
	r.decoratedColumns = kept

	oldSlots := make([]uint32, len(live))
	for i, ls := range live {
		oldSlots[i] = ls.oldSlot
	}

	newCursor := uint32(len(live)) + 1
	newCapacity := r.capacity
	cfg := r.registry.config
	if float64(newCursor) < cfg.CompactionShrinkBelow*float64(r.capacity) {
		newCapacity = uint32(cfg.CompactionShrinkTarget*float64(newCursor)) + 1
	}

	for _, col := range r.allColumns() {
		col.CompactCopy(oldSlots, int(newCapacity))
	}

	newRepoSlotToEntitySlot := make([]uint32, newCapacity)
	for i, ls := range live {
		newRepoSlotToEntitySlot[uint32(i)+1] = entityOldToNew[ls.oldEntitySlot]
	}
	r.repoSlotToEntitySlot = newRepoSlotToEntitySlot

	if float64(newEntityCount) < cfg.CompactionShrinkBelow*float64(len(r.entitySlotToRepoSlot)) {
		r.entitySlotToRepoSlot = make([]uint32, newEntityCount)
	} else {
		need := int(newEntityCount)
		if need > len(r.entitySlotToRepoSlot) {
			r.entitySlotToRepoSlot = append(r.entitySlotToRepoSlot, make([]uint32, need-len(r.entitySlotToRepoSlot))...)
		}
		for i := range r.entitySlotToRepoSlot {
			r.entitySlotToRepoSlot[i] = 0
		}
	}
	for i := uint32(1); i < newCursor; i++ {
		e := r.repoSlotToEntitySlot[i]
		if e != 0 {
			r.entitySlotToRepoSlot[e] = i
		}
	}

	for i := uint32(1); i < newCursor; i++ {
		rec := r.ownerColumn.Get(i)
		rec.Owner = remapEntitySlot(rec.Owner, entityOldToNew)
		for j := range rec.Owned {
			rec.Owned[j] = remapEntitySlot(rec.Owned[j], entityOldToNew)
		}
		r.ownerColumn.Set(i, rec)
	}

	r.cursor = newCursor
	r.capacity = newCapacity
}

// Stats reports storage statistics for this repository (ambient
// observability, not part of the closed core contract).
func (r *Repository) Stats() StorageStats {
	count := 0
	for s := uint32(1); s < r.cursor; s++ {
		if r.repoSlotToEntitySlot[s] != 0 {
			count++
		}
	}
	return StorageStats{
		ComponentType:   r.typeID,
		ComponentCount:  count,
		Cursor:          r.cursor,
		Capacity:        r.capacity,
		DecoratedColumn: len(r.decoratedColumns),
	}
}

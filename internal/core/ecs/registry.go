package ecs

import "time"

// Registry is the system container (S) of spec §2: it owns the entity
// table (E) and every component repository (R), and exposes the public
// add-entity / add-component / get / remove / iterate / decorate / compact
// surface. It is single-threaded by design (spec §5): there is no internal
// locking, and callers sharing a Registry across goroutines must
// synchronise externally. A monotonically increasing structuralMod
// counter lets Iterator detect the "mutated while iterating" misuse case
// spec §5 calls out.
type Registry struct {
	config RegistryConfig

	entityIDColumn  []uint32 // index = entity slot; 0 = empty slot
	entityOwnership []OwnershipRecord
	entityCursor    uint32
	entityNextID    uint32

	repos     map[ComponentType]*Repository
	repoOrder []ComponentType // stable registration order, used for whole-registry sweeps

	structuralMod uint64

	// Events and Metrics are always non-nil; callers wanting to observe
	// the registry subscribe to Events or read Metrics, nothing required.
	Events  *EventBus
	Metrics *MetricsCollector
}

// NewRegistry constructs an empty registry. Slot 0 of the entity table is
// reserved as the sentinel "no entity" (global invariant 1).
func NewRegistry(config RegistryConfig) *Registry {
	config = config.withDefaults()
	return &Registry{
		config:          config,
		entityIDColumn:  make([]uint32, 1, config.InitialEntityCapacity),
		entityOwnership: make([]OwnershipRecord, 1, config.InitialEntityCapacity),
		entityCursor:    1,
		entityNextID:    1,
		repos:           make(map[ComponentType]*Repository),
		Events:          NewEventBus(),
		Metrics:         NewMetricsCollector(),
	}
}

func (reg *Registry) bumpStructural() { reg.structuralMod++ }

// RegisterComponentType validates schema (spec §7 MalformedSchema) and
// builds the repository backing it. Registering the same type twice
// replaces the prior repository.
func (reg *Registry) RegisterComponentType(schema *ComponentTypeSchema) error {
	if err := schema.validate(); err != nil {
		return err
	}
	if _, exists := reg.repos[schema.TypeID]; !exists {
		reg.repoOrder = append(reg.repoOrder, schema.TypeID)
	}
	repo := newRepository(reg, schema)
	repo.ExpandEntityIndex(len(reg.entityIDColumn))
	reg.repos[schema.TypeID] = repo
	return nil
}

// Repository returns the repository registered for t, or nil.
func (reg *Registry) Repository(t ComponentType) *Repository {
	return reg.repos[t]
}

func (reg *Registry) ensureEntityCapacity(n uint32) {
	if n <= uint32(len(reg.entityIDColumn)) {
		return
	}
	newIDs := make([]uint32, n)
	copy(newIDs, reg.entityIDColumn)
	reg.entityIDColumn = newIDs

	newOwn := make([]OwnershipRecord, n)
	copy(newOwn, reg.entityOwnership)
	reg.entityOwnership = newOwn

	for _, t := range reg.repoOrder {
		reg.repos[t].ExpandEntityIndex(int(n))
	}
}

func (reg *Registry) allocEntitySlot() uint32 {
	s := reg.entityCursor
	reg.entityCursor++
	if reg.entityCursor > uint32(len(reg.entityIDColumn)) {
		reg.ensureEntityCapacity(uint32(float64(reg.entityCursor)*reg.config.GrowthFactor) + 1)
	} else {
		reg.ensureEntityCapacity(reg.entityCursor)
	}
	return s
}

// AddEntity implements spec §4.5 add_entity: allocates the next entity
// slot, assigns the next entity id, expands every repository's entity
// index, and returns the new entity.
func (reg *Registry) AddEntity() Entity {
	slot := reg.allocEntitySlot()
	id := reg.entityNextID
	reg.entityNextID++
	reg.entityIDColumn[slot] = id
	reg.entityOwnership[slot] = OwnershipRecord{}
	reg.bumpStructural()
	e := Entity{Slot: slot, ID: id}
	reg.Metrics.RecordCounter("ecs.entities_created", 1)
	reg.Events.Publish(EntityCreatedEvent{EventBase{Type: EventTypeIDEntityCreated, Entity: e, Timestamp: time.Now(), Priority: EventPriorityNormal}})
	return e
}

// AddEntityFromTemplate implements spec §4.5 add_entity(template): adds a
// fresh entity, then for every component type the template carries,
// invokes add_from_template on that type's repository.
func (reg *Registry) AddEntityFromTemplate(template Entity) (Entity, error) {
	e := reg.AddEntity()
	for _, t := range reg.repoOrder {
		repo := reg.repos[t]
		templateHandle, ok := repo.Get(template.Slot)
		if !ok {
			continue
		}
		if !(templateHandle.EntitySlot == template.Slot) {
			continue
		}
		if _, err := repo.AddFromTemplate(e.Slot, templateHandle); err != nil {
			return e, err
		}
	}
	return e, nil
}

// IsEntityAlive reports whether e is alive: non-zero slot, in range, and
// the entity table still points to e's id at that slot.
func (reg *Registry) IsEntityAlive(e Entity) bool {
	return e.Slot != 0 && e.Slot < reg.entityCursor && reg.entityIDColumn[e.Slot] == e.ID
}

// RemoveEntity implements spec §4.5 remove_entity: removes the component
// for this entity from every repository (cascading owned-child removal
// through each component's ownership record), clears the entity slot, then
// disowns/removes the entity's own children.
func (reg *Registry) RemoveEntity(e Entity) bool {
	if !reg.IsEntityAlive(e) {
		return false
	}
	slot := e.Slot
	for _, t := range reg.repoOrder {
		reg.repos[t].Remove(slot)
	}
	reg.entityIDColumn[slot] = 0
	reg.bumpStructural()
	reg.removeOwnable(OwnableRef{Kind: OwnableEntity, Entity: e})
	reg.Metrics.RecordCounter("ecs.entities_destroyed", 1)
	reg.Events.Publish(EntityDestroyedEvent{EventBase{Type: EventTypeIDEntityDestroyed, Entity: e, Timestamp: time.Now(), Priority: EventPriorityNormal}})
	return true
}

// AddComponent adds a component of type t to entity e, returning its
// handle (spec §4.2 add, invoked through the system container's public
// surface).
func (reg *Registry) AddComponent(t ComponentType, e Entity) (ComponentHandle, error) {
	repo := reg.repos[t]
	if repo == nil {
		return ComponentHandle{}, NewMalformedSchemaError("no repository registered for component type " + string(t))
	}
	if !reg.IsEntityAlive(e) {
		return ComponentHandle{}, NewInvalidHandleError("add_component: entity is not alive")
	}
	h, err := repo.Add(e.Slot)
	if err == nil {
		reg.Metrics.RecordCounter("ecs.components_added", 1)
		reg.Events.Publish(ComponentAddedEvent{EventBase: EventBase{Type: EventTypeIDComponentAdded, Entity: e, Timestamp: time.Now(), Priority: EventPriorityNormal}, ComponentType: t})
	}
	return h, err
}

// GetComponent returns the live handle of type t attached to e, if any.
func (reg *Registry) GetComponent(t ComponentType, e Entity) (ComponentHandle, bool) {
	repo := reg.repos[t]
	if repo == nil || !reg.IsEntityAlive(e) {
		return ComponentHandle{}, false
	}
	return repo.Get(e.Slot)
}

// RemoveComponent removes the component of type t attached to e, if any.
func (reg *Registry) RemoveComponent(t ComponentType, entitySlot uint32) bool {
	repo := reg.repos[t]
	if repo == nil {
		return false
	}
	ok := repo.Remove(entitySlot)
	if ok {
		e := Entity{Slot: entitySlot, ID: reg.entityIDColumn[entitySlot]}
		reg.Metrics.RecordCounter("ecs.components_removed", 1)
		reg.Events.Publish(ComponentRemovedEvent{EventBase: EventBase{Type: EventTypeIDComponentRemoved, Entity: e, Timestamp: time.Now(), Priority: EventPriorityNormal}, ComponentType: t})
	}
	return ok
}

// Iterate constructs a multi-type iterator over required and optional
// component types (spec §4.6).
func (reg *Registry) Iterate(required, optional []ComponentType) *Iterator {
	return newIterator(reg, required, optional)
}

// Compact implements spec §4.5's whole-system compact: walks the entity
// table, compacting empty slots out with an in-place pass, producing a
// permutation old_entity_slot -> new_entity_slot; shrinks the table if
// occupancy drops below 60%; then invokes each repository's compaction
// with that permutation and the new entity count.
func (reg *Registry) Compact() {
	oldToNew := make([]uint32, reg.entityCursor)
	newIDs := make([]uint32, 1, reg.entityCursor)
	next := uint32(1)
	for old := uint32(1); old < reg.entityCursor; old++ {
		id := reg.entityIDColumn[old]
		if id == 0 {
			oldToNew[old] = 0
			continue
		}
		oldToNew[old] = next
		newIDs = append(newIDs, id)
		next++
	}

	newOwnership := make([]OwnershipRecord, len(newIDs))
	for old := uint32(1); old < reg.entityCursor; old++ {
		newSlot := oldToNew[old]
		if newSlot == 0 {
			continue
		}
		rec := reg.entityOwnership[old]
		rec.Owner = remapEntitySlot(rec.Owner, oldToNew)
		for i := range rec.Owned {
			rec.Owned[i] = remapEntitySlot(rec.Owned[i], oldToNew)
		}
		newOwnership[newSlot] = rec
	}

	newEntityCount := next
	if float64(newEntityCount) < reg.config.CompactionShrinkBelow*float64(len(reg.entityIDColumn)) {
		shrunk := make([]uint32, newEntityCount)
		copy(shrunk, newIDs)
		reg.entityIDColumn = shrunk
		shrunkOwn := make([]OwnershipRecord, newEntityCount)
		copy(shrunkOwn, newOwnership)
		reg.entityOwnership = shrunkOwn
	} else {
		reg.entityIDColumn = append(newIDs, make([]uint32, uint32(len(reg.entityIDColumn))-newEntityCount)...)
		reg.entityOwnership = append(newOwnership, make([]OwnershipRecord, uint32(len(reg.entityIDColumn))-newEntityCount)...)
	}
	reg.entityCursor = newEntityCount

	for _, t := range reg.repoOrder {
		reg.repos[t].Compact(oldToNew, newEntityCount)
	}
	reg.bumpStructural()
	reg.Metrics.RecordGauge("ecs.entity_count", float64(newEntityCount-1))
	reg.Events.Publish(RegistryCompactedEvent{EventBase{Type: EventTypeIDRegistryCompacted, Timestamp: time.Now(), Priority: EventPriorityLow}})
}

// Stats reports per-repository storage statistics across the whole registry.
func (reg *Registry) Stats() []StorageStats {
	stats := make([]StorageStats, 0, len(reg.repoOrder))
	for _, t := range reg.repoOrder {
		stats = append(stats, reg.repos[t].Stats())
	}
	return stats
}

// EntityCount returns the number of live entities currently in the table.
func (reg *Registry) EntityCount() int {
	count := 0
	for s := uint32(1); s < reg.entityCursor; s++ {
		if reg.entityIDColumn[s] != 0 {
			count++
		}
	}
	return count
}

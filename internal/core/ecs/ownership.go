package ecs

// OwnableKind distinguishes the two things the ownership graph (spec §4.4)
// can relate: entities and components.
type OwnableKind int

const (
	OwnableNone OwnableKind = iota
	OwnableEntity
	OwnableComponent
)

// OwnableRef names one ownable (entity or component) by value — small
// enough to copy freely, as the owner sets rarely grow large (spec §9:
// "typical sizes are small, so a flat vector with linear-scan membership
// is acceptable").
type OwnableRef struct {
	Kind      OwnableKind
	Entity    Entity
	Component ComponentHandle
}

// refEqual compares component refs by (type, entity_slot, comp_id), not by
// full struct equality: RepoSlot is a cache of where a component currently
// sits in its repository, and compaction can renumber it independently of
// the entity-slot remap a stored ref receives (see remapEntitySlot). Two
// refs naming the same live component must compare equal even when one was
// captured before a compaction that moved it.
func refEqual(a, b OwnableRef) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case OwnableEntity:
		return a.Entity == b.Entity
	case OwnableComponent:
		return a.Component.Type == b.Component.Type &&
			a.Component.EntitySlot == b.Component.EntitySlot &&
			a.Component.CompID == b.Component.CompID
	default:
		return true
	}
}

// OwnershipRecord is the (owner, owned set) pair held by every entity and
// every component (spec §3, §4.4). Invariant: B is in A.Owned iff
// A == B's owner.
type OwnershipRecord struct {
	Owner OwnableRef
	Owned []OwnableRef
}

// ownershipRecord returns a pointer to the ownership record backing ref,
// wherever it physically lives (the entity table or a repository's owner
// column). For a component ref, the repo slot is re-resolved from
// (Type, EntitySlot) rather than trusted from the ref's cached RepoSlot:
// whole-registry compaction renumbers each repository's slots independently,
// and a ref stored inside another repository's owner column (the only
// cross-repository owner/owned edges the core creates, via required-type
// auto-attach) only has its EntitySlot field remapped at compaction time,
// never its RepoSlot. Re-resolving here is the same lookup RemoveComponent
// already does, and keeps stale RepoSlot values from ever being dereferenced.
func (reg *Registry) ownershipRecord(ref OwnableRef) *OwnershipRecord {
	switch ref.Kind {
	case OwnableEntity:
		return &reg.entityOwnership[ref.Entity.Slot]
	case OwnableComponent:
		repo := reg.repos[ref.Component.Type]
		if repo == nil {
			return nil
		}
		s := repo.repoSlotOf(ref.Component.EntitySlot)
		if s == 0 {
			return nil
		}
		return repo.ownerColumn.ptr(s)
	default:
		return nil
	}
}

// SetOwner implements spec §4.4 set_owner: if self currently has a
// different owner, that owner is notified to revoke; the new owner is
// recorded, and if non-null, notified of the grant.
func (reg *Registry) SetOwner(self, newOwner OwnableRef) {
	rec := reg.ownershipRecord(self)
	if rec == nil {
		return
	}
	if rec.Owner.Kind != OwnableNone && !refEqual(rec.Owner, newOwner) {
		reg.NotifyRevoked(rec.Owner, self)
	}
	rec.Owner = newOwner
	if newOwner.Kind != OwnableNone {
		reg.NotifyGranted(newOwner, self)
	}
}

// NotifyGranted implements spec §4.4 notify_granted: insert other into
// owner's owned set.
func (reg *Registry) NotifyGranted(owner, other OwnableRef) {
	rec := reg.ownershipRecord(owner)
	if rec == nil {
		return
	}
	rec.Owned = append(rec.Owned, other)
}

// NotifyRevoked implements spec §4.4 notify_revoked: remove other from
// owner's owned set.
func (reg *Registry) NotifyRevoked(owner, other OwnableRef) {
	rec := reg.ownershipRecord(owner)
	if rec == nil {
		return
	}
	for i, o := range rec.Owned {
		if refEqual(o, other) {
			rec.Owned = append(rec.Owned[:i], rec.Owned[i+1:]...)
			return
		}
	}
}

// DisownAndRemoveChildren implements spec §4.4 disown_and_remove_children:
// for each owned element, clear its owner, and if it is an entity remove
// it from the registry, or if it is a component remove it from its
// entity. Because every ownable has a single owner slot, each element is
// visited at most once even if callers deliberately construct a cycle
// (spec §4.4 invariants).
func (reg *Registry) DisownAndRemoveChildren(self OwnableRef) {
	rec := reg.ownershipRecord(self)
	if rec == nil || len(rec.Owned) == 0 {
		return
	}
	owned := rec.Owned
	rec.Owned = nil
	for _, child := range owned {
		childRec := reg.ownershipRecord(child)
		if childRec != nil {
			childRec.Owner = OwnableRef{}
		}
		switch child.Kind {
		case OwnableEntity:
			reg.RemoveEntity(child.Entity)
		case OwnableComponent:
			reg.RemoveComponent(child.Component.Type, child.Component.EntitySlot)
		}
	}
}

// removeOwnable is the shared tail of Repository.Remove and
// Registry.RemoveEntity: revoke self's owner (propagating the revoke
// notification), then cascade-remove everything self owned.
func (reg *Registry) removeOwnable(self OwnableRef) {
	reg.SetOwner(self, OwnableRef{})
	reg.DisownAndRemoveChildren(self)
}

// remapEntitySlot rewrites the entity-slot fields embedded in an
// ownership reference after a whole-system or per-repository compaction
// renumbers entity slots (spec §4.2 compact's entity_old_to_new parameter).
// It deliberately leaves Component.RepoSlot untouched: that field's
// repository may compact before or after the one holding this ref, so
// there is no order in which rewriting it here would be reliable.
// ownershipRecord re-resolves the live repo slot from (Type, EntitySlot)
// instead of trusting it, and refEqual ignores it entirely, so the stale
// value is never dereferenced.
func remapEntitySlot(ref OwnableRef, oldToNew []uint32) OwnableRef {
	switch ref.Kind {
	case OwnableEntity:
		ref.Entity.Slot = oldToNew[ref.Entity.Slot]
	case OwnableComponent:
		ref.Component.EntitySlot = oldToNew[ref.Component.EntitySlot]
	}
	return ref
}

package components

import (
	"muscle-dreamer/internal/core/ecs"
)

// InventoryItem is one stack entry in an inventory.
type InventoryItem struct {
	ItemID   string
	Quantity int
}

// ItemList is the slice backing the "items" property.
type ItemList []InventoryItem

func (l ItemList) CloneDeep() ItemList {
	out := make(ItemList, len(l))
	copy(out, l)
	return out
}

// InventoryStore backs the "inventory" component type: a capacity-bounded
// stack of item/quantity entries.
type InventoryStore struct {
	Items    *ecs.TypedColumn[ItemList]
	Capacity *ecs.TypedColumn[int]
}

func NewInventoryComponentType() (*ecs.ComponentTypeSchema, *InventoryStore) {
	store := &InventoryStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeInventory,
		Properties: []ecs.PropertySchema{
			{Name: "items", ValueKind: ecs.ValueValueSet, ClonePolicy: ecs.CloneValue},
			{Name: "capacity", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "items":
				store.Items = ecs.NewTypedColumn[ItemList](capacity, p.ValueKind, p.ClonePolicy, func() ItemList { return nil }, p.Shareable, nil)
				return store.Items
			case "capacity":
				store.Capacity = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 16 }, p.Shareable, nil)
				return store.Capacity
			}
			return nil
		},
	}
	return schema, store
}

// AddItem stacks quantity onto an existing item entry, or appends a new one
// if the inventory has not reached capacity. Reports whether it fit.
func (s *InventoryStore) AddItem(h ecs.ComponentHandle, itemID string, quantity int) bool {
	slot := h.RepoSlot
	items := s.Items.Get(slot)
	for i, it := range items {
		if it.ItemID == itemID {
			items[i].Quantity += quantity
			s.Items.Set(slot, items)
			return true
		}
	}
	if len(items) >= s.Capacity.Get(slot) {
		return false
	}
	s.Items.Set(slot, append(items, InventoryItem{ItemID: itemID, Quantity: quantity}))
	return true
}

// RemoveItem decrements quantity, dropping the entry once it reaches zero.
// Reports whether enough quantity was present.
func (s *InventoryStore) RemoveItem(h ecs.ComponentHandle, itemID string, quantity int) bool {
	slot := h.RepoSlot
	items := s.Items.Get(slot)
	for i, it := range items {
		if it.ItemID != itemID {
			continue
		}
		if it.Quantity < quantity {
			return false
		}
		it.Quantity -= quantity
		if it.Quantity == 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i] = it
		}
		s.Items.Set(slot, items)
		return true
	}
	return false
}

func (s *InventoryStore) HasItem(h ecs.ComponentHandle, itemID string) bool {
	for _, it := range s.Items.Get(h.RepoSlot) {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

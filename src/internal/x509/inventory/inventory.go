// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

// KeyBy selects the identity records are deduplicated on.
type KeyBy int

const (
	// KeySubject deduplicates on the canonical subject.
	KeySubject KeyBy = iota
	// KeyNodeID deduplicates on the node id. Records without a node id
	// fall back to their subject.
	KeyNodeID
)

// String returns the report field name of the key.
func (k KeyBy) String() string {
	if k == KeyNodeID {
		return "node_id"
	}
	return "subject"
}

// Inventory holds the newest record per key.
//
// Records are added in scan order. A record replaces the one already held
// for its key only when it was created strictly later, so among equal
// creation times the first one seen is kept.
type Inventory struct {
	by        KeyBy
	nodesOnly bool
	entries   map[string]*Record
	order     []string
}

// NewInventory creates an empty inventory. With nodesOnly set, records
// without a node id are ignored by Add.
func NewInventory(by KeyBy, nodesOnly bool) *Inventory {
	return &Inventory{
		by:        by,
		nodesOnly: nodesOnly,
		entries:   make(map[string]*Record),
	}
}

// Deduplicate builds an inventory from records in one pass.
func Deduplicate(records []*Record, by KeyBy, nodesOnly bool) *Inventory {
	inv := NewInventory(by, nodesOnly)
	for _, rec := range records {
		inv.Add(rec)
	}
	return inv
}

// KeyBy returns the identity the inventory deduplicates on.
func (inv *Inventory) KeyBy() KeyBy { return inv.by }

// Key returns the dedup key of rec.
func (inv *Inventory) Key(rec *Record) string {
	if inv.by == KeyNodeID && rec.HasNodeID() {
		return rec.NodeID
	}
	return rec.Subject
}

// Add offers rec to the inventory and reports whether it is now the record
// held for its key.
func (inv *Inventory) Add(rec *Record) bool {
	if inv.nodesOnly && !rec.HasNodeID() {
		return false
	}

	key := inv.Key(rec)
	existing, ok := inv.entries[key]
	if !ok {
		inv.entries[key] = rec
		inv.order = append(inv.order, key)
		return true
	}
	if rec.Created.After(existing.Created) {
		inv.entries[key] = rec
		return true
	}
	return false
}

// Len returns the number of distinct keys.
func (inv *Inventory) Len() int { return len(inv.order) }

// Get returns the record held for key.
func (inv *Inventory) Get(key string) (*Record, bool) {
	rec, ok := inv.entries[key]
	return rec, ok
}

// Records returns the held records in the order their keys were first seen.
// The slice is a copy and may be reordered by the caller.
func (inv *Inventory) Records() []*Record {
	out := make([]*Record, 0, len(inv.order))
	for _, key := range inv.order {
		out = append(out, inv.entries[key])
	}
	return out
}

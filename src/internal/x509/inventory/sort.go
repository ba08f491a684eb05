// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the report order.
type SortKey int

const (
	// SortExpires orders by expiration, soonest first.
	SortExpires SortKey = iota
	// SortSubject orders by canonical subject in byte order.
	SortSubject
	// SortNodeID orders by node id in byte order; records without one come first.
	SortNodeID
)

// String returns the name accepted by [ParseSortKey].
func (k SortKey) String() string {
	switch k {
	case SortSubject:
		return "subject"
	case SortNodeID:
		return "node_id"
	default:
		return "expires"
	}
}

// ParseSortKey parses "expires", "subject" or "node_id".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "", "expires":
		return SortExpires, nil
	case "subject":
		return SortSubject, nil
	case "node_id", "nodeid":
		return SortNodeID, nil
	default:
		return SortExpires, fmt.Errorf("unknown sort key %q", s)
	}
}

// SortRecords sorts records ascending by key. The sort is stable, so
// records that compare equal keep their relative order.
//
// Day counts derive from Expires with a floor, so sorting by Expires also
// orders a days-remaining report correctly.
func SortRecords(records []*Record, key SortKey) {
	slices.SortStableFunc(records, func(a, b *Record) int {
		switch key {
		case SortSubject:
			return strings.Compare(a.Subject, b.Subject)
		case SortNodeID:
			return strings.Compare(a.NodeID, b.NodeID)
		default:
			return a.Expires.Compare(b.Expires)
		}
	})
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import "time"

const day = 24 * time.Hour

// Record is one parsed certificate file.
//
// Created and Expires are the certificate's not-before and not-after
// fields in UTC. Created <= Expires is expected but not checked. NodeID is
// empty when the subject carries no node id.
type Record struct {
	Path    string
	Subject string
	Created time.Time
	Expires time.Time
	NodeID  string
}

// HasNodeID reports whether the record carries a node id.
func (r *Record) HasNodeID() bool { return r.NodeID != "" }

// ExpireDays returns the number of whole days from now until the
// certificate expires, rounded toward negative infinity. A certificate that
// expired an hour ago is at -1.
func (r *Record) ExpireDays(now time.Time) int {
	d := r.Expires.Sub(now)
	days := int(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// Valid reports whether the certificate still has at least one full day left.
func (r *Record) Valid(now time.Time) bool { return r.ExpireDays(now) > 0 }

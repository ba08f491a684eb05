// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/testutil"
	x509inventory "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/inventory"
)

func nodeRecord(path, node string, created, expires time.Time) *x509inventory.Record {
	subject := "CN=" + node + ",DC=dataone,DC=org"
	return &x509inventory.Record{
		Path:    path,
		Subject: subject,
		Created: created,
		Expires: expires,
		NodeID:  x509inventory.NodeIDFromSubject(subject),
	}
}

func personRecord(path, cn string, created, expires time.Time) *x509inventory.Record {
	return &x509inventory.Record{
		Path:    path,
		Subject: "CN=" + cn + ",O=Example",
		Created: created,
		Expires: expires,
	}
}

func TestDeduplicate_NewestNodeCertificateWins(t *testing.T) {
	records := []*x509inventory.Record{
		nodeRecord("a-2020.pem", "urn:node:A", testutil.Date(2020, 1, 1), testutil.Date(2030, 1, 1)),
		nodeRecord("a-2021.pem", "urn:node:A", testutil.Date(2021, 1, 1), testutil.Date(2030, 1, 1)),
	}

	inv := x509inventory.Deduplicate(records, x509inventory.KeyNodeID, true)

	require.Equal(t, 1, inv.Len())
	rec, ok := inv.Get("urn:node:A")
	require.True(t, ok)
	assert.Equal(t, testutil.Date(2021, 1, 1), rec.Created)
	assert.Equal(t, "a-2021.pem", rec.Path)
}

func TestDeduplicate(t *testing.T) {
	jan := testutil.Date(2020, 1, 1)
	feb := testutil.Date(2020, 2, 1)
	end := testutil.Date(2030, 1, 1)

	tests := []struct {
		name      string
		records   []*x509inventory.Record
		by        x509inventory.KeyBy
		nodesOnly bool
		wantPaths []string
	}{
		{
			name: "Older record later in input does not replace",
			records: []*x509inventory.Record{
				nodeRecord("new.pem", "urn:node:A", feb, end),
				nodeRecord("old.pem", "urn:node:A", jan, end),
			},
			by:        x509inventory.KeySubject,
			wantPaths: []string{"new.pem"},
		},
		{
			name: "Tie keeps first seen",
			records: []*x509inventory.Record{
				nodeRecord("first.pem", "urn:node:A", jan, end),
				nodeRecord("second.pem", "urn:node:A", jan, end),
			},
			by:        x509inventory.KeySubject,
			wantPaths: []string{"first.pem"},
		},
		{
			name: "Nodes only drops person certificates",
			records: []*x509inventory.Record{
				personRecord("jane.pem", "Jane", jan, end),
				nodeRecord("a.pem", "urn:node:A", jan, end),
			},
			by:        x509inventory.KeyNodeID,
			nodesOnly: true,
			wantPaths: []string{"a.pem"},
		},
		{
			name: "Subject key keeps person certificates",
			records: []*x509inventory.Record{
				personRecord("jane.pem", "Jane", jan, end),
				nodeRecord("a.pem", "urn:node:A", jan, end),
			},
			by:        x509inventory.KeySubject,
			wantPaths: []string{"jane.pem", "a.pem"},
		},
		{
			name: "Node key without filter falls back to subject",
			records: []*x509inventory.Record{
				personRecord("jane.pem", "Jane", jan, end),
				personRecord("john.pem", "John", jan, end),
				nodeRecord("a.pem", "urn:node:A", jan, end),
			},
			by:        x509inventory.KeyNodeID,
			wantPaths: []string{"jane.pem", "john.pem", "a.pem"},
		},
		{
			name:      "Empty input",
			records:   nil,
			by:        x509inventory.KeySubject,
			wantPaths: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := x509inventory.Deduplicate(tt.records, tt.by, tt.nodesOnly)

			paths := []string{}
			for _, rec := range inv.Records() {
				paths = append(paths, rec.Path)
			}
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}

func TestInventory_Add(t *testing.T) {
	inv := x509inventory.NewInventory(x509inventory.KeySubject, false)
	end := testutil.Date(2030, 1, 1)

	assert.True(t, inv.Add(nodeRecord("a.pem", "urn:node:A", testutil.Date(2020, 1, 1), end)), "new key is kept")
	assert.False(t, inv.Add(nodeRecord("b.pem", "urn:node:A", testutil.Date(2019, 1, 1), end)), "older record is rejected")
	assert.True(t, inv.Add(nodeRecord("c.pem", "urn:node:A", testutil.Date(2022, 1, 1), end)), "newer record replaces")
	assert.Equal(t, x509inventory.KeySubject, inv.KeyBy())
	assert.Equal(t, 1, inv.Len())

	nodes := x509inventory.NewInventory(x509inventory.KeyNodeID, true)
	assert.False(t, nodes.Add(personRecord("jane.pem", "Jane", testutil.Date(2020, 1, 1), end)))
	assert.Equal(t, 0, nodes.Len())
}

// TestDeduplicate_Properties checks, over shuffled inputs, that exactly one
// record survives per key and that it has the maximum creation time, with
// the earliest input position winning ties.
func TestDeduplicate_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := testutil.Date(2020, 1, 1)

	for round := range 50 {
		var records []*x509inventory.Record
		for i := range 40 {
			node := fmt.Sprintf("urn:node:N%d", rng.IntN(6))
			created := base.AddDate(0, 0, rng.IntN(10))
			records = append(records, nodeRecord(fmt.Sprintf("%d-%d.pem", round, i), node, created, base.AddDate(5, 0, 0)))
		}

		inv := x509inventory.Deduplicate(records, x509inventory.KeyNodeID, true)

		want := map[string]*x509inventory.Record{}
		for _, rec := range records {
			best, ok := want[rec.NodeID]
			if !ok || rec.Created.After(best.Created) {
				want[rec.NodeID] = rec
			}
		}

		require.Equal(t, len(want), inv.Len(), "round %d", round)
		for key, expected := range want {
			got, ok := inv.Get(key)
			require.True(t, ok, "round %d: key %s missing", round, key)
			assert.Same(t, expected, got, "round %d: key %s", round, key)
		}
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/testutil"
	x509inventory "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/inventory"
)

func TestRecord_ExpireDays(t *testing.T) {
	now := testutil.Date(2024, 1, 1)

	tests := []struct {
		name      string
		expires   time.Time
		wantDays  int
		wantValid bool
	}{
		{name: "Ten days ahead", expires: testutil.Date(2024, 1, 11), wantDays: 10, wantValid: true},
		{name: "Partial day truncates", expires: now.Add(36 * time.Hour), wantDays: 1, wantValid: true},
		{name: "Less than a day left", expires: now.Add(time.Hour), wantDays: 0, wantValid: false},
		{name: "Exactly now", expires: now, wantDays: 0, wantValid: false},
		{name: "Expired an hour ago", expires: now.Add(-time.Hour), wantDays: -1, wantValid: false},
		{name: "Expired exactly two days ago", expires: testutil.Date(2023, 12, 30), wantDays: -2, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &x509inventory.Record{Expires: tt.expires}
			assert.Equal(t, tt.wantDays, rec.ExpireDays(now))
			assert.Equal(t, tt.wantValid, rec.Valid(now))
		})
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509inventory "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/inventory"
)

func TestParseCertTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "GeneralizedTime",
			input:    "20210101120000Z",
			expected: time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTCTime this century",
			input:    "300101000000Z",
			expected: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTCTime pivot",
			input:    "500101000000Z",
			expected: time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTCTime last century",
			input:    "991231235959Z",
			expected: time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "OpenSSL single digit day",
			input:    "Jan  1 00:00:00 2020 GMT",
			expected: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "OpenSSL two digit day with surrounding space",
			input:    "  Nov 24 08:41:05 2025 GMT\n",
			expected: time.Date(2025, 11, 24, 8, 41, 5, 0, time.UTC),
		},
		{name: "Garbage", input: "yesterday", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x509inventory.ParseCertTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/testutil"
	x509inventory "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/inventory"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	content := []byte("placeholder")
	testutil.WriteFile(t, dir, "b.pem", content)
	testutil.WriteFile(t, dir, "a.pem", content)
	testutil.WriteFile(t, dir, "notes.txt", content)
	testutil.WriteFile(t, dir, "a.pem.bak", content)
	testutil.WriteFile(t, dir, filepath.Join("nested", "c.pem"), content)
	testutil.WriteFile(t, dir, filepath.Join("nested", "deeper", "d.pem"), content)

	tests := []struct {
		name      string
		path      string
		recursive bool
		expected  []string
		single    bool
	}{
		{
			name:     "Flat",
			path:     dir,
			expected: []string{filepath.Join(dir, "a.pem"), filepath.Join(dir, "b.pem")},
		},
		{
			name:      "Recursive",
			path:      dir,
			recursive: true,
			expected: []string{
				filepath.Join(dir, "a.pem"),
				filepath.Join(dir, "b.pem"),
				filepath.Join(dir, "nested", "c.pem"),
				filepath.Join(dir, "nested", "deeper", "d.pem"),
			},
		},
		{
			name:     "Single file ignores pattern",
			path:     filepath.Join(dir, "notes.txt"),
			expected: []string{filepath.Join(dir, "notes.txt")},
			single:   true,
		},
		{
			name:      "Single file in recursive mode",
			path:      filepath.Join(dir, "a.pem"),
			recursive: true,
			expected:  []string{filepath.Join(dir, "a.pem")},
			single:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, single, err := x509inventory.Resolve(tt.path, tt.recursive)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.single, single)
		})
	}
}

func TestResolve_EmptyDirectory(t *testing.T) {
	got, single, err := x509inventory.Resolve(t.TempDir(), false)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, single)
}

func TestResolve_PathNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	for _, recursive := range []bool{false, true} {
		_, _, err := x509inventory.Resolve(missing, recursive)
		assert.ErrorIs(t, err, x509inventory.ErrPathNotFound)
		assert.Contains(t, err.Error(), missing)
	}
}

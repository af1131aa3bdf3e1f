// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "calls.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{
		Tool:     "geocode_address",
		Params:   map[string]any{"address": "4600 Silver Hill Rd, Washington, DC"},
		OK:       true,
		Duration: 120 * time.Millisecond,
	}))
	require.NoError(t, s.Record(ctx, Entry{
		Tool:  "get_grant_by_number",
		OK:    false,
		Error: "reporter: no record matched project_number=X99",
	}))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "get_grant_by_number", entries[0].Tool)
	assert.False(t, entries[0].OK)
	assert.Equal(t, "reporter: no record matched project_number=X99", entries[0].Error)

	assert.Equal(t, "geocode_address", entries[1].Tool)
	assert.True(t, entries[1].OK)
	assert.Equal(t, "4600 Silver Hill Rd, Washington, DC", entries[1].Params["address"])
	assert.Equal(t, 120*time.Millisecond, entries[1].Duration)
	assert.False(t, entries[1].CalledAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{Tool: "search_screening_list", OK: true}))
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "calls.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), Entry{Tool: "compute_distance", OK: true}))
	entries, err := s.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

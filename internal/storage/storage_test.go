package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "portal.json"))
	require.NoError(t, err)

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"mem":    NewMemStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestPutGetDelete(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(KeyDraftRequest)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Put(KeyDraftRequest, []byte(`{"eventName":"Gala"}`)))

			got, ok, err := s.Get(KeyDraftRequest)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"eventName":"Gala"}`, string(got))

			require.NoError(t, s.Delete(KeyDraftRequest))

			_, ok, err = s.Get(KeyDraftRequest)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPutFullyReplaces(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(KeySubmittedRequest, []byte(`{"a":1,"b":2}`)))
			require.NoError(t, s.Put(KeySubmittedRequest, []byte(`{"a":3}`)))

			got, ok, err := s.Get(KeySubmittedRequest)
			require.NoError(t, err)
			require.True(t, ok)
			// No merging: b is gone.
			assert.JSONEq(t, `{"a":3}`, string(got))
		})
	}
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, s.Delete("neverStored"))
		})
	}
}

func TestGetJSONFailsOpen(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Put(KeyOrganization, []byte("{definitely not json")))

	var v map[string]any
	assert.False(t, GetJSON(s, KeyOrganization, &v))
	assert.False(t, GetJSON(s, "missing", &v))
}

func TestPutJSONRoundTrip(t *testing.T) {
	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	s := NewMemStore()
	require.NoError(t, PutJSON(s, KeyDraftRequest, record{Name: "Gala", Count: 3}))

	var got record
	require.True(t, GetJSON(s, KeyDraftRequest, &got))
	assert.Equal(t, record{Name: "Gala", Count: 3}, got)
}

func TestFileStoreReloadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(KeyRequestID, []byte(`"REQ-ABCD1234"`)))

	second, err := NewFileStore(path)
	require.NoError(t, err)

	got, ok, err := second.Get(KeyRequestID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"REQ-ABCD1234"`, string(got))
}

func TestFileStoreTreatsCorruptFileAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok, err := s.Get(KeyDraftRequest)
	require.NoError(t, err)
	assert.False(t, ok)
}

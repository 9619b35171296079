package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suugaanle/qaamuus/internal/domain/repository"
)

// exerciseStore runs the DocumentStore contract shared by every backend:
// absent keys load as nil without error, saves overwrite, removes are
// idempotent.
func exerciseStore(t *testing.T, store repository.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	doc, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, doc)

	require.NoError(t, store.Save(ctx, "k", []byte(`{"a":1}`)))
	doc, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), doc)

	require.NoError(t, store.Save(ctx, "k", []byte(`{"a":2}`)))
	doc, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), doc)

	require.NoError(t, store.Remove(ctx, "k"))
	doc, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, doc)

	require.NoError(t, store.Remove(ctx, "k"))
}

func TestMemoryStoreContract(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := []byte(`{"a":1}`)
	require.NoError(t, store.Save(ctx, "k", in))
	in[0] = 'X'

	out, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), out)

	// Mutating the loaded copy must not corrupt the stored document.
	out[0] = 'Y'
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), again)
}

func TestSQLiteStoreContract(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	exerciseStore(t, store)
}

func TestFileStoreContract(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "somali_dictionary_entries", []byte(`[]`)))
	require.NoError(t, first.Close())

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	doc, err := second.Load(ctx, "somali_dictionary_entries")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), doc)
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a/b", []byte(`1`)))
	doc, err := store.Load(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, []byte(`1`), doc)
}

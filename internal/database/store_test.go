package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "k", []byte(`{"a":1}`)))
	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, s.Save(ctx, "k", []byte(`{"a":2}`)))
	got, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Save(ctx, "k", buf))
	buf[0] = 'z'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLStore_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "test.db")
	db, err := Connect(TypeSQLite, path)
	require.NoError(t, err)

	s := NewSQLStore(db)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLStore_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Connect(TypeSQLite, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLStore(db).Save(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db, err = Connect(TypeSQLite, path)
	require.NoError(t, err)
	defer db.Close()
	got, err := NewSQLStore(db).Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestConnect_UnsupportedType(t *testing.T) {
	_, err := Connect("mongo", "")
	assert.Error(t, err)
}

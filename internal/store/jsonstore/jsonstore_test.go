package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Get(context.Background(), "list")
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestPutThenGet(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "list", []byte(`[{"name":"Salt"}]`)))
	require.NoError(t, s.Put(ctx, "list", []byte(`[]`)))

	b, err := s.Get(ctx, "list")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "list.json", entries[0].Name())
}

func TestPutCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)
	require.NoError(t, s.Put(context.Background(), "k", []byte("v")))
	_, err := os.Stat(filepath.Join(dir, "k.json"))
	assert.NoError(t, err)
}

func TestKeyIsSanitized(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Put(context.Background(), "../escape/key", []byte("v")))
	_, err := os.Stat(filepath.Join(dir, ".._escape_key.json"))
	assert.NoError(t, err)
}

func TestEmptyKeyRejected(t *testing.T) {
	s := New(t.TempDir())
	assert.Error(t, s.Put(context.Background(), "", []byte("v")))
}

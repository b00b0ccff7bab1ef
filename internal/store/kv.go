// Package store holds the key/value slots the shopping list is persisted to.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/basket/internal/store/jsonstore"
	"github.com/idilsaglam/basket/internal/store/sqlitestore"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is a flat key/value slot store. Put replaces the whole value in one write.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DBFileName is the database created inside a directory given to the sqlite backend.
const DBFileName = "basket.db"

// Open returns the backend named by backend rooted at path. For the file
// backend path is a directory. For sqlite, a path ending in .db, .sqlite or
// .sqlite3 that is not an existing directory is the database file; any other
// path is a directory that gets DBFileName appended.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendFile, "":
		return fileKV{jsonstore.New(path)}, nil
	case BackendSQLite:
		s, err := sqlitestore.Open(sqlitePath(path))
		if err != nil {
			return nil, err
		}
		return sqliteKV{s}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

func sqlitePath(path string) string {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return filepath.Join(path, DBFileName)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return path
	}
	return filepath.Join(path, DBFileName)
}

// The backends report absence with their own sentinel; the adapters below
// translate it so callers only check ErrNotFound.

type fileKV struct{ *jsonstore.Store }

func (f fileKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := f.Store.Get(ctx, key)
	if errors.Is(err, jsonstore.ErrNoValue) {
		return nil, ErrNotFound
	}
	return b, err
}

type sqliteKV struct{ *sqlitestore.Store }

func (s sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Store.Get(ctx, key)
	if errors.Is(err, sqlitestore.ErrNoValue) {
		return nil, ErrNotFound
	}
	return b, err
}

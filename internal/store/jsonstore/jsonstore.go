package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// JSON-backed storage. One file per key, human-readable, portable.
// No locking; fine for a local single-user CLI.

// ErrNoValue is returned by Get when the key has never been written.
var ErrNoValue = errors.New("jsonstore: no value")

var unsafeKey = regexp.MustCompile(`[^A-Za-z0-9._-]`)

type Store struct {
	dir string
}

// New returns a store writing under dir. An empty dir means the working directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) dataPath(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, unsafeKey.ReplaceAllString(key, "_")+".json"), nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.dataPath(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoValue
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Put writes value to a temp file in the same directory and renames it over
// the old one, so readers never see a half-written list.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	p, err := s.dataPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".basket-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

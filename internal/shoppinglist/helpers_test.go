package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/basket/internal/model"
	"github.com/idilsaglam/basket/internal/store"
)

// memKV is an in-memory store.KV.
type memKV struct {
	data   map[string][]byte
	puts   int
	getErr error
	putErr error
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Close() error { return nil }

var errDiskFull = errors.New("disk full")

// newTestManager returns a manager over an empty in-memory store with
// predictable ids.
func newTestManager(t *testing.T) (*Manager, *memKV) {
	t.Helper()
	kv := newMemKV()
	ls := NewListStore(kv, "", 0, zaptest.NewLogger(t))
	m := Open(context.Background(), ls, zaptest.NewLogger(t))
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
	return m, kv
}

func names(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

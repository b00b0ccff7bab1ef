// Package shoppinglist owns the persisted, categorized shopping list:
// loading and saving it, mutating it, and projecting it for display.
package shoppinglist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/category"
	"github.com/idilsaglam/basket/internal/model"
	"github.com/idilsaglam/basket/internal/store"
)

const (
	// DefaultKey is the slot the list lives under.
	DefaultKey = "recipeAppShoppingListData"
	// DefaultMaxBytes mirrors the usual browser storage quota.
	DefaultMaxBytes = 5 << 20

	placeholderName = "Unnamed Item"
)

// ErrQuotaExceeded is returned by Save when the encoded list is larger than
// the configured quota. Nothing is written in that case.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// ListStore reads and writes the whole list as one JSON blob.
type ListStore struct {
	kv       store.KV
	key      string
	maxBytes int
	log      *zap.Logger
}

// NewListStore binds a store to key. Zero values pick DefaultKey and DefaultMaxBytes.
func NewListStore(kv store.KV, key string, maxBytes int, log *zap.Logger) *ListStore {
	if key == "" {
		key = DefaultKey
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ListStore{kv: kv, key: key, maxBytes: maxBytes, log: log.Named("liststore")}
}

// storedItem accepts older shapes where any field may be missing.
type storedItem struct {
	ID       *string `json:"id"`
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Checked  *bool   `json:"checked"`
}

// Load never fails: a missing slot, an unreadable backend or a malformed blob
// all yield an empty list so the program stays usable.
func (s *ListStore) Load(ctx context.Context) []model.Item {
	b, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return []model.Item{}
	}
	if err != nil {
		s.log.Warn("could not read shopping list, starting empty", zap.String("key", s.key), zap.Error(err))
		return []model.Item{}
	}
	var raw []*storedItem
	if err := json.Unmarshal(b, &raw); err != nil {
		s.log.Warn("stored shopping list is malformed, starting empty", zap.String("key", s.key), zap.Error(err))
		return []model.Item{}
	}
	items := make([]model.Item, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			continue
		}
		items = append(items, backfill(*r))
	}
	return items
}

func backfill(r storedItem) model.Item {
	var it model.Item
	if r.ID != nil && *r.ID != "" {
		it.ID = *r.ID
	} else {
		it.ID = uuid.NewString()
	}
	if r.Name != nil && cleanName(*r.Name) != "" {
		it.Name = *r.Name
	} else {
		it.Name = placeholderName
	}
	if r.Category != nil && *r.Category != "" {
		it.Category = model.Category(*r.Category)
	} else {
		it.Category = category.Categorize(it.Name)
	}
	if r.Checked != nil {
		it.Checked = *r.Checked
	}
	return it
}

// Save writes the full list in a single Put. It does not retry.
func (s *ListStore) Save(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if len(b) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrQuotaExceeded, len(b), s.maxBytes)
	}
	if err := s.kv.Put(ctx, s.key, b); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}

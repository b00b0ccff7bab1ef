package shoppinglist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/category"
	"github.com/idilsaglam/basket/internal/model"
)

// AddOutcome tells callers how to word their feedback for an add.
type AddOutcome int

const (
	// AddAdded means a new item was appended.
	AddAdded AddOutcome = iota
	// AddDuplicate means an item with the same name (ignoring case) already exists.
	AddDuplicate
	// AddRejected means the name was empty after trimming.
	AddRejected
)

func (o AddOutcome) String() string {
	switch o {
	case AddAdded:
		return "added"
	case AddDuplicate:
		return "duplicate"
	case AddRejected:
		return "rejected"
	}
	return fmt.Sprintf("AddOutcome(%d)", int(o))
}

// Confirmer asks the user to approve an irreversible action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ClearPrompt is the question Clear puts to its Confirmer.
const ClearPrompt = "Clear the entire shopping list? This cannot be undone."

// Saver persists the full list.
type Saver interface {
	Save(ctx context.Context, items []model.Item) error
}

// Manager is the single owner of the in-memory list. Every mutation is
// followed by a full save before returning. A failed save is returned to the
// caller but the mutation is kept in memory, so nothing the user did is lost
// for the rest of the session.
//
// Manager is not safe for concurrent use.
type Manager struct {
	items []model.Item
	saver Saver
	log   *zap.Logger
	newID func() string
}

// NewManager wraps an already loaded list.
func NewManager(items []model.Item, saver Saver, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	cp := make([]model.Item, len(items))
	copy(cp, items)
	return &Manager{items: cp, saver: saver, log: log.Named("shoppinglist"), newID: uuid.NewString}
}

// Open loads the list from s and returns a manager saving back to it.
func Open(ctx context.Context, s *ListStore, log *zap.Logger) *Manager {
	return NewManager(s.Load(ctx), s, log)
}

// Items returns a copy of the list in insertion order.
func (m *Manager) Items() []model.Item {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Manager) Len() int { return len(m.items) }

// Find returns the item with id.
func (m *Manager) Find(id string) (model.Item, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.items[i], true
	}
	return model.Item{}, false
}

func (m *Manager) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) contains(key string) bool {
	for _, it := range m.items {
		if nameKey(it.Name) == key {
			return true
		}
	}
	return false
}

// add appends name without saving.
func (m *Manager) add(name string) AddOutcome {
	clean := cleanName(name)
	if clean == "" {
		return AddRejected
	}
	if m.contains(nameKey(clean)) {
		return AddDuplicate
	}
	m.items = append(m.items, model.Item{
		ID:       m.newID(),
		Name:     clean,
		Category: category.Categorize(clean),
	})
	return AddAdded
}

// Add appends one item. The returned error is only ever a save failure; the
// item is in the list regardless.
func (m *Manager) Add(ctx context.Context, name string) (AddOutcome, error) {
	out := m.add(name)
	if out != AddAdded {
		return out, nil
	}
	m.log.Debug("item added", zap.String("name", m.items[len(m.items)-1].Name))
	return out, m.persist(ctx)
}

// AddMany adds every candidate, skipping blanks and duplicates, and saves once.
// It returns how many items were added.
func (m *Manager) AddMany(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, n := range names {
		if m.add(n) == AddAdded {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	m.log.Debug("items added", zap.Int("count", added))
	return added, m.persist(ctx)
}

// Toggle flips the checked flag of id. Unknown ids are ignored.
func (m *Manager) Toggle(ctx context.Context, id string) (bool, error) {
	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.items[i].Checked = !m.items[i].Checked
	return true, m.persist(ctx)
}

// Remove deletes id. Unknown ids are ignored.
func (m *Manager) Remove(ctx context.Context, id string) (bool, error) {
	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return true, m.persist(ctx)
}

// Clear empties the list once c approves. It reports whether anything was cleared.
func (m *Manager) Clear(ctx context.Context, c Confirmer) (bool, error) {
	if len(m.items) == 0 {
		return false, nil
	}
	if c == nil || !c.Confirm(ClearPrompt) {
		return false, nil
	}
	m.items = []model.Item{}
	return true, m.persist(ctx)
}

func (m *Manager) persist(ctx context.Context) error {
	if m.saver == nil {
		return nil
	}
	if err := m.saver.Save(ctx, m.items); err != nil {
		m.log.Warn("shopping list not saved, keeping changes in memory", zap.Error(err))
		return fmt.Errorf("save shopping list: %w", err)
	}
	return nil
}

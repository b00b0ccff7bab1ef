package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/basket/internal/model"
	"github.com/idilsaglam/basket/internal/shoppinglist"
)

type memSaver struct {
	saves int
	last  []model.Item
	err   error
}

func (s *memSaver) Save(_ context.Context, items []model.Item) error {
	s.saves++
	s.last = items
	return s.err
}

func newTestModel(t *testing.T, names ...string) (Model, *memSaver) {
	t.Helper()
	s := &memSaver{}
	mgr := shoppinglist.NewManager(nil, s, zaptest.NewLogger(t))
	_, err := mgr.AddMany(context.Background(), names)
	require.NoError(t, err)
	s.saves = 0
	m := New(context.Background(), mgr, Options{Log: zaptest.NewLogger(t)})
	return m, s
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func rowAt(t *testing.T, m Model, i int) rowItem {
	t.Helper()
	r, ok := m.list.Items()[i].(rowItem)
	require.True(t, ok, "entry %d is not a row", i)
	return r
}

func TestEntriesPutHeadersBeforeRows(t *testing.T) {
	m, _ := newTestModel(t, "milk", "flour", "eggs")
	items := m.list.Items()
	require.Len(t, items, 5)

	assert.Equal(t, headerItem{Category: model.Baking, Count: 1}, items[0])
	assert.Equal(t, "flour", items[1].(rowItem).Name)
	assert.Equal(t, headerItem{Category: model.DairyEggs, Count: 2}, items[2])
	assert.Equal(t, "eggs", items[3].(rowItem).Name)
	assert.Equal(t, "milk", items[4].(rowItem).Name)
}

func TestTogglePatchMatchesRebuild(t *testing.T) {
	m, s := newTestModel(t, "milk", "flour", "eggs")
	m.list.Select(3)
	m = press(t, m, "space")

	assert.True(t, rowAt(t, m, 3).Checked)
	assert.Equal(t, 1, s.saves)

	rebuilt := entries(shoppinglist.Render(m.mgr.Items()))
	assert.Equal(t, rebuilt, m.list.Items())

	m = press(t, m, "space")
	assert.False(t, rowAt(t, m, 3).Checked)
	assert.Equal(t, entries(shoppinglist.Render(m.mgr.Items())), m.list.Items())
}

func TestToggleOnHeaderDoesNothing(t *testing.T) {
	m, s := newTestModel(t, "milk")
	m.list.Select(0)
	m = press(t, m, "space")
	assert.Zero(t, s.saves)
}

func TestRemoveRebuilds(t *testing.T) {
	m, s := newTestModel(t, "milk", "flour")
	m.list.Select(1)
	m = press(t, m, "d")

	assert.Equal(t, 1, s.saves)
	assert.Equal(t, 1, m.mgr.Len())
	assert.Equal(t, []list.Item{
		headerItem{Category: model.DairyEggs, Count: 1},
		rowItem{shoppinglist.Row{ID: m.mgr.Items()[0].ID, Name: "milk"}},
	}, m.list.Items())
}

func TestAddInline(t *testing.T) {
	m, s := newTestModel(t, "milk")
	m = press(t, m, "a")
	require.True(t, m.adding)
	m = typeText(t, m, "basil")
	m = press(t, m, "enter")

	assert.False(t, m.adding)
	assert.Equal(t, 2, m.mgr.Len())
	assert.Equal(t, 1, s.saves)
	r, ok := m.list.SelectedItem().(rowItem)
	require.True(t, ok)
	assert.Equal(t, "basil", r.Name)
}

func TestAddDuplicateShowsNotice(t *testing.T) {
	m, s := newTestModel(t, "milk")
	m = press(t, m, "a")
	m = typeText(t, m, "MILK")
	m = press(t, m, "enter")

	assert.Equal(t, 1, m.mgr.Len())
	assert.Zero(t, s.saves)
	assert.Contains(t, m.status, "already on your list")
}

func TestAddBlankStaysInAddMode(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "a", "enter")
	assert.True(t, m.adding)
	assert.NotEmpty(t, m.addErr)

	m = press(t, m, "esc")
	assert.False(t, m.adding)
}

func TestClearNeedsConfirmation(t *testing.T) {
	m, s := newTestModel(t, "milk", "flour")

	m = press(t, m, "x")
	require.True(t, m.confirming)
	assert.Contains(t, m.View(), shoppinglist.ClearPrompt)
	m = press(t, m, "n")
	assert.False(t, m.confirming)
	assert.Equal(t, 2, m.mgr.Len())
	assert.Zero(t, s.saves)

	m = press(t, m, "x", "y")
	assert.Zero(t, m.mgr.Len())
	assert.Equal(t, 1, s.saves)
	assert.Empty(t, m.list.Items())
	assert.Contains(t, m.View(), "Your shopping list is empty")
}

func TestClearOnEmptyListDoesNotAsk(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "x")
	assert.False(t, m.confirming)
}

func TestSaveFailureKeepsChange(t *testing.T) {
	m, s := newTestModel(t, "milk")
	s.err = errors.New("disk full")
	m.list.Select(1)
	m = press(t, m, "space")

	assert.True(t, m.mgr.Items()[0].Checked)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "disk full")
}

func TestCopy(t *testing.T) {
	var copied string
	s := &memSaver{}
	mgr := shoppinglist.NewManager(nil, s, nil)
	_, _ = mgr.Add(context.Background(), "flour")
	m := New(context.Background(), mgr, Options{Copy: func(text string) (string, error) {
		copied = text
		return "system", nil
	}})

	m = press(t, m, "c")
	assert.Equal(t, "Shopping List:\n\n--- Baking ---\n[ ] flour\n", copied)
	assert.Contains(t, m.status, "copied")
}

func TestCopyFailure(t *testing.T) {
	s := &memSaver{}
	mgr := shoppinglist.NewManager(nil, s, nil)
	_, _ = mgr.Add(context.Background(), "flour")
	m := New(context.Background(), mgr, Options{Copy: func(string) (string, error) {
		return "", errors.New("no clipboard")
	}})
	m = press(t, m, "c")
	assert.True(t, m.statusErr)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

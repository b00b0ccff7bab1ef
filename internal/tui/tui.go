// Package tui is the interactive shopping list.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/model"
	"github.com/idilsaglam/basket/internal/shoppinglist"
	"github.com/idilsaglam/basket/internal/ui"
)

// headerItem starts a category block.
type headerItem struct {
	Category model.Category
	Count    int
}

func (h headerItem) Title() string       { return string(h.Category) }
func (h headerItem) Description() string { return "" }
func (h headerItem) FilterValue() string { return "" }

// rowItem adapts a rendered row to list.Item.
type rowItem struct {
	shoppinglist.Row
}

func (r rowItem) Title() string       { return r.Name }
func (r rowItem) Description() string { return "" }
func (r rowItem) FilterValue() string { return r.Name }

// itemDelegate draws one line per entry.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t := ui.Current()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	switch it := item.(type) {
	case headerItem:
		fmt.Fprintf(w, "%s%s %s", prefix, t.Category.Render(string(it.Category)), t.Muted.Render(fmt.Sprintf("(%d)", it.Count)))
	case rowItem:
		fmt.Fprintf(w, "%s  %s %s", prefix, ui.Checkbox(it.Checked), ui.ItemText(it.Name, it.Checked))
	}
}

// entries projects a view into list entries: a header per category followed
// by its rows.
func entries(v shoppinglist.View) []list.Item {
	out := make([]list.Item, 0, len(v.Groups)+v.Total)
	for _, g := range v.Groups {
		out = append(out, headerItem{Category: g.Category, Count: len(g.Rows)})
		for _, r := range g.Rows {
			out = append(out, rowItem{r})
		}
	}
	return out
}

// Options wire the side effects the list can trigger.
type Options struct {
	// Copy puts text on the clipboard and names the method used.
	Copy func(text string) (string, error)
	Log  *zap.Logger
}

type keyMap struct {
	Toggle, Remove, Add, Copy, Clear, Quit key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
	Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model. Every mutation goes through the manager,
// which saves before returning.
type Model struct {
	ctx  context.Context
	mgr  *shoppinglist.Manager
	opts Options
	log  *zap.Logger

	list list.Model

	adding bool
	ti     textinput.Model
	addErr string

	confirming bool

	status    string
	statusErr bool
}

// New builds the model over mgr.
func New(ctx context.Context, mgr *shoppinglist.Manager, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	t := ui.Current()

	l := list.New(nil, itemDelegate{}, 76, 18)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.KeyMap.Quit.SetEnabled(false)
	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Remove, keys.Copy, keys.Clear}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item name..."
	ti.CharLimit = 200

	m := Model{ctx: ctx, mgr: mgr, opts: opts, log: log.Named("tui"), list: l, ti: ti}
	m.rebuild()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, mgr *shoppinglist.Manager, opts Options) error {
	p := tea.NewProgram(New(ctx, mgr, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// rebuild replaces every entry from a fresh render.
func (m *Model) rebuild() {
	v := shoppinglist.Render(m.mgr.Items())
	m.list.SetItems(entries(v))
	m.setTitle(v.Total, v.Checked)
}

func (m *Model) setTitle(total, checked int) {
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s",
		"Shopping List",
		t.Success.Render(t.SymOK), checked,
		t.Pending.Render("•"), total-checked,
		ui.ProgressBar(checked, total, 16),
	)
}

func (m *Model) selectID(id string) {
	for i, it := range m.list.Items() {
		if r, ok := it.(rowItem); ok && r.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) selectedRow() (int, rowItem, bool) {
	i := m.list.Index()
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return i, rowItem{}, false
	}
	r, ok := items[i].(rowItem)
	return i, r, ok
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

// saved reports a persistence failure. The in-memory change is kept.
func (m *Model) saved(err error) {
	if err != nil {
		m.log.Warn("save failed", zap.Error(err))
		m.setStatus("Could not save shopping list: "+err.Error(), true)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}
	if m.confirming {
		return m.updateConfirming(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.setStatus("", false)

	switch {
	case key.Matches(km, keys.Quit):
		return m, tea.Quit

	case key.Matches(km, keys.Toggle):
		i, r, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		found, err := m.mgr.Toggle(m.ctx, r.ID)
		if !found {
			return m, nil
		}
		m.saved(err)
		// Only the touched row is redrawn; a toggle never moves a row.
		r.Checked = !r.Checked
		cmd := m.list.SetItem(i, r)
		v := shoppinglist.Render(m.mgr.Items())
		m.setTitle(v.Total, v.Checked)
		return m, cmd

	case key.Matches(km, keys.Remove):
		i, r, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		found, err := m.mgr.Remove(m.ctx, r.ID)
		if !found {
			return m, nil
		}
		m.saved(err)
		m.rebuild()
		if n := len(m.list.Items()); i >= n && n > 0 {
			i = n - 1
		}
		m.list.Select(i)
		return m, nil

	case key.Matches(km, keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		return m, m.ti.Focus()

	case key.Matches(km, keys.Copy):
		m.copyList()
		return m, nil

	case key.Matches(km, keys.Clear):
		if m.mgr.Len() == 0 {
			m.setStatus("The list is already empty.", false)
			return m, nil
		}
		m.confirming = true
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			name := m.ti.Value()
			outcome, err := m.mgr.Add(m.ctx, name)
			switch outcome {
			case shoppinglist.AddRejected:
				m.addErr = "Item name cannot be empty"
				return m, nil
			case shoppinglist.AddDuplicate:
				m.setStatus(fmt.Sprintf("%q is already on your list.", strings.TrimSpace(name)), false)
			case shoppinglist.AddAdded:
				m.saved(err)
				m.rebuild()
				items := m.mgr.Items()
				m.selectID(items[len(items)-1].ID)
			}
			m.adding = false
			m.ti.Blur()
			return m, nil
		case "esc":
			m.adding = false
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.confirming = false
	answer := strings.ToLower(km.String()) == "y"
	cleared, err := m.mgr.Clear(m.ctx, shoppinglist.ConfirmFunc(func(string) bool { return answer }))
	if cleared {
		m.saved(err)
		m.rebuild()
		if err == nil {
			m.setStatus("Shopping list cleared.", false)
		}
	}
	return m, nil
}

func (m *Model) copyList() {
	v := shoppinglist.Render(m.mgr.Items())
	if !v.CanCopy {
		m.setStatus("Nothing to copy.", false)
		return
	}
	if m.opts.Copy == nil {
		m.setStatus("Clipboard is not available.", true)
		return
	}
	method, err := m.opts.Copy(shoppinglist.PlainText(m.mgr.Items()))
	if err != nil {
		m.log.Warn("copy failed", zap.Error(err))
		m.setStatus("Could not copy. Run `basket copy` to print the list.", true)
		return
	}
	m.setStatus("Shopping list copied to clipboard ("+method+").", false)
}

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder
	if m.mgr.Len() == 0 {
		b.WriteString(t.Title.Render("Shopping List") + "\n\n")
		b.WriteString(t.Muted.Render("Your shopping list is empty. Press a to add an item.") + "\n")
	} else {
		b.WriteString(m.list.View())
	}

	switch {
	case m.adding:
		title := "Add item"
		if m.addErr != "" {
			title += " " + t.Error.Render(m.addErr)
		}
		b.WriteString("\n" + ui.PanelString(title+"\n"+m.ti.View()))
	case m.confirming:
		b.WriteString("\n" + ui.PanelString(t.Warn.Render(shoppinglist.ClearPrompt)+"\n"+t.Help.Render("y confirm · any other key cancels")))
	case m.status != "":
		style := t.Success
		if m.statusErr {
			style = t.Error
		}
		b.WriteString("\n" + style.Render(m.status))
	}
	return ui.PanelString(b.String())
}

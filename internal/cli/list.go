package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/clipboard"
	"github.com/idilsaglam/basket/internal/recipe"
	"github.com/idilsaglam/basket/internal/shoppinglist"
	"github.com/idilsaglam/basket/internal/tui"
	"github.com/idilsaglam/basket/internal/ui"
)

func (r *runner) doList(a []string) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(ui.Stderr())
	plain := fs.Bool("plain", r.opt.Plain, "print the list instead of opening the interactive view")
	if err := fs.Parse(a); err != nil {
		return 2
	}

	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	if *plain || !stdoutIsTerminal() {
		printList(shoppinglist.Render(mgr.Items()))
		return 0
	}
	err = tui.Run(r.ctx, mgr, tui.Options{
		Copy: func(text string) (string, error) { return clipboard.Copy(r.opt.Log, text, r.opt.Clipboard...) },
		Log:  r.opt.Log,
	})
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// printList writes the grouped list with the indices check and rm accept.
func printList(v shoppinglist.View) {
	t := ui.Current()
	if v.Empty {
		ui.Info("Your shopping list is empty.")
		return
	}
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d",
			t.Title.Render("Shopping List"),
			t.Success.Render(t.SymOK), v.Checked,
			t.Pending.Render("•"), v.Total-v.Checked),
		ui.ProgressBar(v.Checked, v.Total, 20),
	}
	n := 0
	for _, g := range v.Groups {
		lines = append(lines, "", t.Category.Render(string(g.Category)))
		for _, row := range g.Rows {
			n++
			lines = append(lines, fmt.Sprintf("%3d. %s %s", n, ui.Checkbox(row.Checked), ui.ItemText(row.Name, row.Checked)))
		}
	}
	ui.Panel(lines)
}

// warnSave reports a failed save; the change itself has already happened.
func warnSave(err error) {
	if errors.Is(err, shoppinglist.ErrQuotaExceeded) {
		ui.Warn("Could not save shopping list: storage is full.")
		return
	}
	ui.Warn("Could not save shopping list: " + err.Error())
}

func (r *runner) doAdd(name string) int {
	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	outcome, err := mgr.Add(r.ctx, name)
	switch outcome {
	case shoppinglist.AddRejected:
		return 2
	case shoppinglist.AddDuplicate:
		ui.Info(fmt.Sprintf("%q is already on your list.", strings.TrimSpace(name)))
		return 0
	}
	if err != nil {
		warnSave(err)
		return 1
	}
	items := mgr.Items()
	it := items[len(items)-1]
	ui.OK(fmt.Sprintf("added %s (%s)", it.Name, it.Category))
	return 0
}

func (r *runner) doAddMany(a []string) int {
	names := recipe.ParseIngredients(strings.Join(a, "\n"))
	if len(names) == 0 {
		ui.Fail("addmany: no names given")
		return 2
	}
	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()
	return r.addAll(mgr, names)
}

// addAll adds names in one batch and reports how many were new.
func (r *runner) addAll(mgr *shoppinglist.Manager, names []string) int {
	added, err := mgr.AddMany(r.ctx, names)
	if err != nil {
		warnSave(err)
		return 1
	}
	if added == 0 {
		ui.Info("All items are already on your shopping list.")
		return 0
	}
	ui.OK(fmt.Sprintf("added %d of %d item(s) to your shopping list", added, len(names)))
	return 0
}

// rowAt resolves a 1-based index against the displayed order.
func rowAt(mgr *shoppinglist.Manager, userIndex int) (shoppinglist.Row, bool) {
	rows := shoppinglist.Render(mgr.Items()).Rows()
	if userIndex < 1 || userIndex > len(rows) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(rows), userIndex))
		ui.Hint("Hint: run `basket ls -plain` to see valid indexes")
		return shoppinglist.Row{}, false
	}
	return rows[userIndex-1], true
}

func (r *runner) doToggle(userIndex int) int {
	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	row, ok := rowAt(mgr, userIndex)
	if !ok {
		return 2
	}
	if _, err := mgr.Toggle(r.ctx, row.ID); err != nil {
		warnSave(err)
		return 1
	}
	state := "checked"
	if row.Checked {
		state = "unchecked"
	}
	ui.OK(state + " " + row.Name)
	return 0
}

func (r *runner) doRemove(userIndex int) int {
	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	row, ok := rowAt(mgr, userIndex)
	if !ok {
		return 2
	}
	if _, err := mgr.Remove(r.ctx, row.ID); err != nil {
		warnSave(err)
		return 1
	}
	ui.OK("removed " + row.Name)
	return 0
}

func (r *runner) doClear(a []string) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(ui.Stderr())
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(a); err != nil {
		return 2
	}

	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	if mgr.Len() == 0 {
		ui.Info("The list is already empty.")
		return 0
	}
	var c shoppinglist.Confirmer = shoppinglist.ConfirmFunc(r.confirm)
	if *yes {
		c = shoppinglist.ConfirmFunc(func(string) bool { return true })
	}
	cleared, err := mgr.Clear(r.ctx, c)
	if !cleared {
		ui.Info("Nothing cleared.")
		return 0
	}
	if err != nil {
		warnSave(err)
		return 1
	}
	ui.OK("shopping list cleared")
	return 0
}

func (r *runner) doCopy() int {
	mgr, closeFn, err := r.openList()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeFn()

	v := shoppinglist.Render(mgr.Items())
	if !v.CanCopy {
		ui.Info("Your shopping list is empty. Nothing to copy.")
		return 0
	}
	text := shoppinglist.PlainText(mgr.Items())
	method, err := clipboard.Copy(r.opt.Log, text, r.opt.Clipboard...)
	if err != nil {
		r.log.Info("clipboard unavailable", zap.Error(err))
		fmt.Fprint(ui.Stdout(), text)
		ui.Warn("Could not copy automatically. Copy the list above manually.")
		return 0
	}
	ui.OK("shopping list copied to clipboard (" + method + ")")
	return 0
}

// Package cli turns command-line arguments into shopping list and recipe
// actions.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/auth"
	"github.com/idilsaglam/basket/internal/clipboard"
	"github.com/idilsaglam/basket/internal/config"
	"github.com/idilsaglam/basket/internal/shoppinglist"
	"github.com/idilsaglam/basket/internal/store"
	"github.com/idilsaglam/basket/internal/ui"
)

// Options carry what the root command resolved before dispatch.
type Options struct {
	Config *config.Config
	Log    *zap.Logger
	// Plain prints the list instead of opening the interactive view.
	Plain bool
	// Stdin answers prompts; nil means os.Stdin.
	Stdin io.Reader
	// Clipboard overrides clipboard.Default().
	Clipboard []clipboard.Strategy
	// Auth overrides the token store under config.HomeDir().
	Auth *auth.Store
}

type runner struct {
	ctx context.Context
	opt Options
	log *zap.Logger
	in  *bufio.Reader
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.Log == nil {
		opt.Log = zap.NewNop()
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Auth == nil {
		opt.Auth = auth.NewStore(config.HomeDir())
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clipboard.Default()
	}
	r := &runner{ctx: ctx, opt: opt, log: opt.Log.Named("cli"), in: bufio.NewReader(opt.Stdin)}

	cmd, a := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls", "list":
		return r.doList(a)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: basket add <name...>")
			return 2
		}
		return r.doAdd(strings.Join(a, " "))

	case "addmany":
		if len(a) == 0 {
			ui.Fail("usage: basket addmany <name, name, ...>")
			return 2
		}
		return r.doAddMany(a)

	case "check", "toggle":
		n, code := indexArg(cmd, a)
		if code != 0 {
			return code
		}
		return r.doToggle(n)

	case "rm", "remove":
		n, code := indexArg(cmd, a)
		if code != 0 {
			return code
		}
		return r.doRemove(n)

	case "clear":
		return r.doClear(a)

	case "copy":
		return r.doCopy()

	case "recipe":
		return r.runRecipe(a)

	case "auth":
		return r.runAuth(a)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr())
	PrintHelp()
	return 2
}

func indexArg(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail("usage: basket " + cmd + " <index>")
		return 0, 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return 0, 2
	}
	return n, 0
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `basket - recipes and a categorized shopping list

Usage:
  basket [-config file] [-theme classic|neon|mono] [-plain] <subcommand> [args]

Shopping list:
  ls [-plain]            Show the list (interactive unless -plain or piped)
  add <name...>          Add one item (duplicates are ignored, case-insensitively)
  addmany <a, b, ...>    Add several items separated by commas or newlines
  check <index>          Toggle the item at the 1-based index shown by ls
  rm <index>             Remove the item at index
  clear [-y]             Empty the list after confirmation
  copy                   Copy the list to the clipboard as plain text

Recipes:
  recipe generate [-ingredients "a, b"] [-description text] [-diet d] [-cuisine c]
                  [-add] [-save] [-share]
  recipe sub <ingredient>      Suggest substitutions
  recipe open [-add] [-save] <share link>

Auth:
  auth <login|logout|status|whoami>   Token for the recipe service

Examples:
  basket add "olive oil"
  basket addmany "eggs, flour, milk"
  basket -plain ls
  basket check 2
  basket recipe generate -ingredients "chickpeas, spinach" -diet vegan -add
`)
}

// openList loads the list from the configured backend. The caller must call
// the returned close func.
func (r *runner) openList() (*shoppinglist.Manager, func(), error) {
	sc := r.opt.Config.Store
	kv, err := store.Open(sc.Backend, sc.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	ls := shoppinglist.NewListStore(kv, sc.Key, sc.MaxBytes, r.opt.Log)
	mgr := shoppinglist.Open(r.ctx, ls, r.opt.Log)
	return mgr, func() {
		if err := kv.Close(); err != nil {
			r.log.Warn("close store", zap.Error(err))
		}
	}, nil
}

// confirm asks a yes/no question on stdin; anything but y/yes is no.
func (r *runner) confirm(prompt string) bool {
	fmt.Fprint(ui.Stdout(), prompt+" [y/N] ")
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(ui.Stdout())
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (r *runner) readLine(prompt string) (string, error) {
	fmt.Fprint(ui.Stdout(), prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func stdoutIsTerminal() bool {
	if f, ok := ui.Stdout().(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

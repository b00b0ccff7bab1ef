// Package clipboard copies text through a ranked list of mechanisms.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// ErrUnavailable means every strategy failed; the caller should show the text
// and ask the user to copy it by hand.
var ErrUnavailable = errors.New("clipboard unavailable")

// Strategy is one way of putting text on the clipboard.
type Strategy interface {
	Name() string
	Copy(text string) error
}

// System uses the OS clipboard (pbcopy, xclip, xsel, wl-copy, Windows API).
type System struct{}

func (System) Name() string { return "system" }

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no system clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set its clipboard with an escape sequence. It
// works over SSH but only when Out is a terminal that honors OSC 52.
type OSC52 struct {
	Out io.Writer
	// IsTerminal reports whether Out is interactive; nil means check Out
	// itself, and writers that are not files never count as terminals.
	IsTerminal func() bool
}

func (OSC52) Name() string { return "osc52" }

func (o OSC52) Copy(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	isTTY := o.IsTerminal
	if isTTY == nil {
		isTTY = func() bool { return writerIsTTY(out) }
	}
	if !isTTY() {
		return errors.New("not a terminal")
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

func writerIsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Default returns the strategies in preference order.
func Default() []Strategy {
	return []Strategy{System{}, OSC52{}}
}

// Copy tries each strategy in order and returns the name of the first that
// succeeds, or ErrUnavailable once all of them have failed.
func Copy(log *zap.Logger, text string, strategies ...Strategy) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var errs []error
	for _, s := range strategies {
		if err := s.Copy(text); err != nil {
			log.Debug("clipboard strategy failed", zap.String("strategy", s.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		return s.Name(), nil
	}
	return "", fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

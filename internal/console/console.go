// Package console runs the interactive, line-oriented menu over a roster.
//
// The console owns the roster for the whole session. Every handler works on
// the in-memory roster and, after a successful mutation, hands the full
// roster to the Store. Input and storage errors are reported to the user and
// control returns to the main menu; only the Exit choice, the end of input
// or context cancellation end Run.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dusk-indust/roster/internal/roster"
)

// Store persists the full roster.
type Store interface {
	Save(r *roster.Roster) error
	Path() string
}

var errExit = errors.New("exit requested")

// Console is one interactive session.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	roster *roster.Roster
	store  Store
	menu   *Menu
}

// New returns a Console reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, r *roster.Roster, store Store) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		roster: r,
		store:  store,
	}
	c.menu = buildMainMenu(c)
	return c
}

// Run shows the main menu until the user exits or input ends, both of which
// return nil. It returns ctx.Err() if the context is cancelled between
// prompts.
func (c *Console) Run(ctx context.Context) error {
	c.println("--- Welcome to Student Management System ---")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.menu.render(c.out)
		choice, err := c.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(c.menu.Items)))
		if err != nil {
			return c.finish(err)
		}

		item, ok := c.menu.pick(choice)
		if !ok {
			c.println(c.menu.invalidChoice())
			continue
		}
		if err := item.Action(ctx); err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) finish(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		c.println("")
		fallthrough
	case errors.Is(err, errExit):
		c.println("Exiting Student Management System. Goodbye!")
		return nil
	default:
		return err
	}
}

// prompt writes label and reads one trimmed line of any length. A final line
// without a newline is still returned; io.EOF comes once the input is
// exhausted.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// persist saves the roster and reports the outcome. A failed save leaves the
// in-memory roster as it is.
func (c *Console) persist() {
	if err := c.store.Save(c.roster); err != nil {
		slog.Warn("save failed", "path", c.store.Path(), "error", err)
		c.printf("**Error**: Could not write to file %s: %v\n", c.store.Path(), err)
		return
	}
	c.printf("Data saved successfully to %s.\n", c.store.Path())
}

func (c *Console) heading(title string) {
	c.printf("\n--- %s ---\n", title)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

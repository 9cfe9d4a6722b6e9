package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/waymark"
	"github.com/aretw0/waymark/internal/presentation/tui"
)

// ShowOptions contains the configuration for the show command.
type ShowOptions struct {
	Path       string
	Attributes map[string]string
	Debug      bool
	// Plain skips the glamour render and prints the raw source, for pipes
	// and dumb terminals. It is forced on when Stdout is not a TTY.
	Plain bool
	Out   io.Writer
}

// Show renders the document source for the terminal and appends a
// structural outline of the assembled walkthrough.
func Show(opts ShowOptions) error {
	logger := createLogger(opts.Debug)

	source, err := os.ReadFile(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Path, err)
	}

	wt, err := waymark.Load(source,
		waymark.WithAttributes(opts.Attributes),
		waymark.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	rendered := string(source)
	if !opts.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		render := tui.NewRenderer()
		if out, rerr := render(string(source)); rerr == nil {
			rendered = out
		}
	}

	if _, err := fmt.Fprint(opts.Out, rendered); err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.Out, tui.Outline(wt))
	return err
}

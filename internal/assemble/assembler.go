package assemble

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

// Assembler turns a parsed document tree into a Walkthrough. It holds no
// state between calls; Build is a pure function of its input tree.
type Assembler struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Assembler.
type Option func(*Assembler)

// WithLogger sets a custom structured logger for the assembler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// New creates a configured Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// Build assembles the full Walkthrough from a document root. It fails with
// *walkthrough.StructuralError when the document has no child blocks at all;
// a document must carry at least a preamble.
func (a *Assembler) Build(doc ports.Document) (*walkthrough.Walkthrough, error) {
	blocks := doc.Blocks()
	if len(blocks) == 0 {
		return nil, &walkthrough.StructuralError{Reason: "document has no blocks"}
	}

	preamble := blocks[0]
	kept, resources := SplitPreamble(preamble)

	var rendered strings.Builder
	for _, child := range kept {
		rendered.WriteString(child.Convert())
	}

	var tasks []walkthrough.Task
	total := 0
	for _, child := range blocks[1:] {
		if !IsTask(child) {
			continue
		}
		task := a.buildTask(child)
		total += task.Time
		tasks = append(tasks, task)
	}

	wt := &walkthrough.Walkthrough{
		Title:     doc.DocumentTitle(),
		Preamble:  rendered.String(),
		Time:      total,
		Tasks:     tasks,
		Resources: resources,
	}

	a.logger.Debug("assembled walkthrough",
		"title", wt.Title,
		"tasks", len(wt.Tasks),
		"time", wt.Time,
		"resources", len(wt.Resources))

	return wt, nil
}

package waymark

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/waymark/internal/adapters/markdown"
	"github.com/aretw0/waymark/internal/assemble"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

// Option defines a functional option for configuring a Load call.
type Option func(*loader)

type loader struct {
	parser     ports.DocumentParser
	attributes map[string]string
	logger     *slog.Logger
}

// WithParser injects a custom document parser, bypassing the default
// markdown adapter.
func WithParser(p ports.DocumentParser) Option {
	return func(l *loader) {
		l.parser = p
	}
}

// WithAttributes sets named parser attributes, passed through opaquely to
// the document parser.
func WithAttributes(attrs map[string]string) Option {
	return func(l *loader) {
		l.attributes = attrs
	}
}

// WithLogger sets a custom structured logger for the assembly pass.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// Load parses raw source text and assembles the full Walkthrough graph.
// It returns a *walkthrough.StructuralError (via errors.As) when the
// document violates the minimal shape contract.
func Load(source []byte, opts ...Option) (*walkthrough.Walkthrough, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.parser == nil {
		l.parser = markdown.New()
	}

	doc, err := l.parser.Parse(source, l.attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var assemblerOpts []assemble.Option
	if l.logger != nil {
		assemblerOpts = append(assemblerOpts, assemble.WithLogger(l.logger))
	}

	return assemble.New(assemblerOpts...).Build(doc)
}

// LoadFile reads a document from disk and assembles it via Load.
func LoadFile(path string, opts ...Option) (*walkthrough.Walkthrough, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(source, opts...)
}

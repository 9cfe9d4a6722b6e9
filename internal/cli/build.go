package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/waymark"
)

// BuildOptions contains the configuration for the build command.
type BuildOptions struct {
	Path       string
	Pretty     bool
	Attributes map[string]string
	Debug      bool
	Out        io.Writer
}

// Build assembles the document at opts.Path and writes the walkthrough as
// JSON to opts.Out.
func Build(opts BuildOptions) error {
	logger := createLogger(opts.Debug)

	wt, err := waymark.LoadFile(opts.Path,
		waymark.WithAttributes(opts.Attributes),
		waymark.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var encoded []byte
	if opts.Pretty {
		encoded, err = json.MarshalIndent(wt, "", "  ")
	} else {
		encoded, err = json.Marshal(wt)
	}
	if err != nil {
		return fmt.Errorf("failed to encode walkthrough: %w", err)
	}

	_, err = fmt.Fprintln(opts.Out, string(encoded))
	return err
}

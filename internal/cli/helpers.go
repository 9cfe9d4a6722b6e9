package cli

import (
	"log/slog"
	"os"

	"github.com/aretw0/waymark/internal/logging"
)

// createLogger configures the command logger. Debug output goes to Stderr
// so it never mixes with the JSON or rendered output on Stdout.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(os.Stderr, slog.LevelDebug)
	}
	return logging.NewNop()
}

// ParseAttrFlags converts repeated "key=value" flag values into a map.
// Malformed entries (no '=') are ignored rather than fatal.
func ParseAttrFlags(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		for i := 0; i < len(pair); i++ {
			if pair[i] == '=' {
				attrs[pair[:i]] = pair[i+1:]
				break
			}
		}
	}
	return attrs
}

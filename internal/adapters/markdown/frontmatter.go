package markdown

import (
	"bytes"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// metadata is the decoded YAML front matter of a walkthrough document.
type metadata struct {
	// Title overrides the first level-1 heading as document title.
	Title string `mapstructure:"title"`

	// Attributes are default parser attributes; attributes passed to
	// Parse take precedence over them.
	Attributes map[string]string `mapstructure:"attributes"`
}

var frontMatterFence = []byte("---\n")

// splitFrontMatter separates an optional leading `---` YAML block from the
// markdown body. Documents without front matter pass through untouched.
func splitFrontMatter(source []byte) (metadata, []byte, error) {
	var meta metadata

	if !bytes.HasPrefix(source, frontMatterFence) {
		return meta, source, nil
	}

	rest := source[len(frontMatterFence):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return meta, source, nil
	}

	block := rest[:end]
	body := rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\n"))

	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return meta, nil, fmt.Errorf("invalid front matter: %w", err)
	}
	if err := mapstructure.Decode(raw, &meta); err != nil {
		return meta, nil, fmt.Errorf("invalid front matter: %w", err)
	}

	return meta, body, nil
}

// mergeAttributes layers explicit parser attributes over front matter
// defaults. Neither input map is mutated.
func mergeAttributes(defaults, explicit map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(explicit))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range explicit {
		merged[k] = v
	}
	return merged
}

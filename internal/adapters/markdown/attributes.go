package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// parseAttrList parses the inside syntax of a block attribute line, e.g.
//
//	{type=taskResource service=github title="Release page"}
//
// Values are either bare words or double-quoted strings. Returns false when
// the string is not a well-formed, non-empty attribute list.
func parseAttrList(line string) (map[string]string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
		return nil, false
	}

	attrs := make(map[string]string)
	rest := strings.TrimSpace(line[1 : len(line)-1])
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return nil, false
		}
		key := rest[:eq]
		if strings.ContainsAny(key, " \t\"") {
			return nil, false
		}
		rest = rest[eq+1:]

		var value string
		switch {
		case strings.HasPrefix(rest, `"`):
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return nil, false
			}
			value = rest[1 : 1+end]
			rest = strings.TrimSpace(rest[end+2:])
		default:
			if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
				value = rest[:sp]
				rest = strings.TrimSpace(rest[sp+1:])
			} else {
				value = rest
				rest = ""
			}
			if value == "" {
				return nil, false
			}
		}
		attrs[key] = value
	}

	if len(attrs) == 0 {
		return nil, false
	}
	return attrs, true
}

// blockquoteAttrs inspects a blockquote's first paragraph. When that
// paragraph is a single attribute line, it returns the parsed attributes and
// the paragraph so the caller can exclude it from the content. Multi-line
// first paragraphs never carry attributes.
func blockquoteAttrs(bq *ast.Blockquote, source []byte) (map[string]string, ast.Node) {
	first := bq.FirstChild()
	para, ok := first.(*ast.Paragraph)
	if !ok || para.Lines().Len() != 1 {
		return nil, nil
	}
	seg := para.Lines().At(0)
	line := string(seg.Value(source))
	attrs, ok := parseAttrList(line)
	if !ok {
		return nil, nil
	}
	return attrs, para
}

// astAttrs copies goldmark node attributes (e.g. `## Install {time=5}`)
// into a plain string map.
func astAttrs(n ast.Node) map[string]string {
	attrs := make(map[string]string)
	for _, attr := range n.Attributes() {
		attrs[string(attr.Name)] = attrValueString(attr.Value)
	}
	return attrs
}

func attrValueString(v any) string {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

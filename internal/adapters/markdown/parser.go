// Package markdown adapts goldmark to the ports document tree.
//
// The mapping is structural: the first level-1 heading is the document
// title, level-2 headings open tasks, level-3 headings open steps, and
// blockquotes whose first paragraph is a single attribute line (e.g.
// `> {type=verification}`) become typed blocks. Resource-typed blockquotes
// surface as side-panel containers. Everything else is opaque content,
// rendered to HTML on Convert.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/aretw0/waymark/pkg/ports"
)

// Type-tag values that promote an attributed blockquote to a side-panel
// container. The values themselves are opaque to this adapter; the assembly
// core gives them meaning.
const (
	typeTaskResource        = "taskResource"
	typeWalkthroughResource = "walkthroughResource"
)

// Parser implements ports.DocumentParser on top of goldmark.
type Parser struct {
	md goldmark.Markdown
}

// New creates a parser with heading attributes enabled and raw HTML passed
// through, since Convert output is treated as opaque presentation markup.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithParserOptions(gparser.WithAttribute()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

var _ ports.DocumentParser = (*Parser)(nil)

// Parse converts markdown source into a ports document tree. The attributes
// map is layered over the document's front matter defaults and exposed on
// the root node.
func (p *Parser) Parse(source []byte, attributes map[string]string) (ports.Document, error) {
	meta, body, err := splitFrontMatter(source)
	if err != nil {
		return nil, err
	}

	root := p.md.Parser().Parse(text.NewReader(body))
	conv := &converter{md: p.md, source: body}

	doc := &document{
		node: node{
			context: ports.ContextDocument,
			attrs:   mergeAttributes(meta.Attributes, attributes),
			conv:    conv,
		},
		title: meta.Title,
	}

	if root.FirstChild() == nil {
		// Nothing in the document at all; the assembler rejects this.
		return doc, nil
	}

	preamble := &node{
		context: ports.ContextPreamble,
		attrs:   map[string]string{},
		conv:    conv,
	}
	doc.node.add(preamble)

	var task, step *node
	taskCount, stepCount := 0, 0

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if h, ok := child.(*ast.Heading); ok {
			switch {
			case h.Level == 1:
				if doc.title == "" {
					doc.title = textOf(h, body)
				}
				continue
			case h.Level == 2:
				taskCount++
				stepCount = 0
				task = &node{
					context:  ports.ContextSection,
					level:    1,
					attrs:    astAttrs(h),
					numbered: true,
					number:   taskCount,
					title:    textOf(h, body),
					asts:     []ast.Node{h},
					conv:     conv,
				}
				doc.node.add(task)
				step = nil
				continue
			case h.Level == 3 && task != nil:
				stepCount++
				step = &node{
					context:  ports.ContextSection,
					level:    2,
					attrs:    astAttrs(h),
					numbered: true,
					number:   stepCount,
					title:    textOf(h, body),
					asts:     []ast.Node{h},
					conv:     conv,
				}
				task.add(step)
				continue
			}
		}

		container := preamble
		switch {
		case step != nil:
			container = step
		case task != nil:
			container = task
		}
		container.add(p.contentNode(child, container.level, body, conv))
	}

	return doc, nil
}

// contentNode wraps one top-of-container AST block. Attributed blockquotes
// become typed blocks (sidebar containers for resource types) whose children
// are the quote's inner blocks, minus the attribute line.
func (p *Parser) contentNode(child ast.Node, level int, body []byte, conv *converter) *node {
	bq, ok := child.(*ast.Blockquote)
	if !ok {
		return leafNode(child, level, conv)
	}

	attrs, attrPara := blockquoteAttrs(bq, body)
	if attrs == nil {
		return leafNode(child, level, conv)
	}

	context := contextFor(child)
	if t := attrs["type"]; t == typeTaskResource || t == typeWalkthroughResource {
		context = ports.ContextSidebar
	}

	n := &node{
		context: context,
		level:   level,
		attrs:   attrs,
		title:   attrs["title"],
		conv:    conv,
	}
	for inner := bq.FirstChild(); inner != nil; inner = inner.NextSibling() {
		if inner == attrPara {
			continue
		}
		n.add(leafNode(inner, level, conv))
	}
	return n
}

func leafNode(child ast.Node, level int, conv *converter) *node {
	return &node{
		context: contextFor(child),
		level:   level,
		attrs:   map[string]string{},
		asts:    []ast.Node{child},
		conv:    conv,
	}
}

// contextFor derives a context tag from the AST kind, e.g. "paragraph",
// "blockquote", "fencedcodeblock". Only sections and sidebars matter to the
// assembler; the rest is informational.
func contextFor(n ast.Node) string {
	return strings.ToLower(n.Kind().String())
}

// textOf extracts the plain text of an inline subtree (heading titles).
func textOf(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(textOf(c, source))
		}
	}
	return sb.String()
}

package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"

	"github.com/aretw0/waymark/pkg/ports"
)

// converter renders goldmark AST nodes against the original source. It is
// shared by every node of one parsed tree.
type converter struct {
	md     goldmark.Markdown
	source []byte
}

func (c *converter) render(n ast.Node) string {
	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, c.source, n); err != nil {
		return ""
	}
	return buf.String()
}

// node implements ports.Node over a slice of goldmark AST nodes. Container
// nodes (document, preamble, sections, sidebars) hold children; leaf nodes
// hold the AST blocks they render.
type node struct {
	context  string
	level    int
	attrs    map[string]string
	numbered bool
	number   int
	title    string
	parent   *node
	blocks   []*node
	asts     []ast.Node
	conv     *converter
}

func (n *node) Context() string { return n.context }
func (n *node) Level() int      { return n.level }
func (n *node) Numbered() bool  { return n.numbered }
func (n *node) Number() int     { return n.number }
func (n *node) Title() string   { return n.title }

func (n *node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *node) Parent() ports.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Blocks() []ports.Node {
	out := make([]ports.Node, len(n.blocks))
	for i, b := range n.blocks {
		out[i] = b
	}
	return out
}

// Convert renders the node's own AST blocks followed by its children, in
// source order.
func (n *node) Convert() string {
	var sb strings.Builder
	for _, a := range n.asts {
		sb.WriteString(n.conv.render(a))
	}
	for _, b := range n.blocks {
		sb.WriteString(b.Convert())
	}
	return sb.String()
}

// add attaches a child and resolves its parent link.
func (n *node) add(child *node) {
	child.parent = n
	n.blocks = append(n.blocks, child)
}

// document is the root node returned by the parser.
type document struct {
	node
	title string
}

func (d *document) DocumentTitle() string { return d.title }

// Package memory provides an in-memory implementation of the ports node
// tree. It backs the assembly tests and lets library consumers feed Waymark
// from sources that never pass through a text parser.
package memory

import (
	"strings"

	"github.com/aretw0/waymark/pkg/ports"
)

// Node is a plain in-memory ports.Node. Build a tree with the constructors
// and Add; parent links, levels, and section numbering are resolved on
// attachment.
type Node struct {
	context  string
	level    int
	attrs    map[string]string
	numbered bool
	number   int
	title    string
	markup   string
	parent   *Node
	blocks   []*Node
}

// NewNode creates a detached node with the given context kind and rendered
// markup.
func NewNode(context, markup string) *Node {
	return &Node{
		context: context,
		attrs:   make(map[string]string),
		markup:  markup,
	}
}

// NewSection creates a titled sectioning container. Sections are numbered
// among their sibling sections when attached.
func NewSection(title string) *Node {
	n := NewNode(ports.ContextSection, "")
	n.title = title
	n.numbered = true
	return n
}

// NewSidebar creates a side-panel container with a title.
func NewSidebar(title string) *Node {
	n := NewNode(ports.ContextSidebar, "")
	n.title = title
	return n
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(name, value string) *Node {
	n.attrs[name] = value
	return n
}

// WithTitle sets the node's title and returns it for chaining.
func (n *Node) WithTitle(title string) *Node {
	n.title = title
	return n
}

// Add attaches children in order, resolving their parent link, nesting
// level, and ordinal number among numbered siblings. It returns the
// receiver for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		child.parent = n
		child.relevel(n.level)
		if child.numbered {
			count := 0
			for _, sibling := range n.blocks {
				if sibling.numbered {
					count++
				}
			}
			child.number = count + 1
		}
		n.blocks = append(n.blocks, child)
	}
	return n
}

// relevel recomputes the nesting level of this node and its subtree given
// the level of the containing node's content. Sections nest one level
// deeper; every other block sits at the container's own level. Reattaching
// a prebuilt subtree keeps the whole chain consistent.
func (n *Node) relevel(parentLevel int) {
	n.level = parentLevel
	if n.context == ports.ContextSection {
		n.level = parentLevel + 1
	}
	for _, child := range n.blocks {
		child.relevel(n.level)
	}
}

func (n *Node) Context() string { return n.context }
func (n *Node) Level() int      { return n.level }
func (n *Node) Numbered() bool  { return n.numbered }
func (n *Node) Number() int     { return n.number }
func (n *Node) Title() string   { return n.title }

func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) Parent() ports.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Blocks() []ports.Node {
	out := make([]ports.Node, len(n.blocks))
	for i, b := range n.blocks {
		out[i] = b
	}
	return out
}

// Convert renders the node's own markup followed by its descendants'.
func (n *Node) Convert() string {
	var sb strings.Builder
	sb.WriteString(n.markup)
	for _, b := range n.blocks {
		sb.WriteString(b.Convert())
	}
	return sb.String()
}

// Document is the in-memory root node.
type Document struct {
	Node
	title string
}

// NewDocument creates a document root with the given title.
func NewDocument(title string) *Document {
	return &Document{
		Node:  *NewNode(ports.ContextDocument, ""),
		title: title,
	}
}

// DocumentTitle returns the document's own title.
func (d *Document) DocumentTitle() string { return d.title }

package ports

// Context kinds a parser adapter is expected to report. Any other value is
// treated as opaque by the assembly core and falls through to text
// classification.
const (
	// ContextDocument identifies the root node of a parsed document.
	ContextDocument = "document"
	// ContextSection identifies a sectioning container (a titled, numbered
	// division such as a heading section).
	ContextSection = "section"
	// ContextSidebar identifies a side-panel container, used for resource
	// blocks that live outside the main reading flow.
	ContextSidebar = "sidebar"
	// ContextPreamble identifies the container holding everything between
	// the document title and the first section.
	ContextPreamble = "preamble"
)

// Node is the capability interface the assembly core requires from a parsed
// document tree. It exposes structural facts only; the concrete parser and
// its AST stay behind an adapter.
type Node interface {
	// Context returns the container kind tag (e.g. ContextSection).
	Context() string

	// Level returns the section nesting depth: 0 at document scope, 1
	// inside a top-level section, 2 inside a subsection, and so on.
	Level() int

	// Attribute looks up a declared attribute by name. The second return
	// is false when the attribute is absent.
	Attribute(name string) (string, bool)

	// Numbered reports whether the node participates in hierarchical
	// numbering. Number is only meaningful when Numbered returns true.
	Numbered() bool
	Number() int

	// Title returns the node's own title, without any numbering prefix.
	Title() string

	// Parent returns the enclosing node, or nil at the document root.
	Parent() Node

	// Blocks returns the ordered child nodes.
	Blocks() []Node

	// Convert renders this node and its descendants to presentation
	// markup. The result is opaque to the core.
	Convert() string
}

// Document is the root node of a parsed tree.
type Document interface {
	Node

	// DocumentTitle returns the document's own title.
	DocumentTitle() string
}

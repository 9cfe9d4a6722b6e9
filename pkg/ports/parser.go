package ports

// DocumentParser defines how raw source text becomes a Node tree.
// This allows the parsing engine (Markdown, in-memory fixtures, ...) to be
// decoupled from the assembly core.
type DocumentParser interface {
	// Parse converts raw source into a document tree. The attributes map
	// carries named parser options and is passed through opaquely; a nil
	// map is valid.
	Parse(source []byte, attributes map[string]string) (Document, error)
}

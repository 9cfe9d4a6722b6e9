/*
Package ports defines the driven ports (interfaces) for the Waymark assembler.

These interfaces decouple the assembly core from the concrete document parser,
allowing the same classification logic to run over any tree that can report
its structural facts.

# Key Interfaces

  - Node: A single parsed block exposing context kind, nesting level,
    attributes, numbering, parent/child links, and opaque rendering.
  - Document: The root Node, which additionally carries the document title.
  - DocumentParser: Turns raw source text into a Document tree.
*/
package ports

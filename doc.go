/*
Package waymark assembles guided walkthroughs from plain documents.

A walkthrough is a document organized into timed tasks, each decomposed into
steps, with narrative text interleaved with verification checkpoints and
side-panel resources. Waymark parses the source (Markdown by default),
classifies every block from its structural facts, links verification
checkpoints to their success/fail follow-ups, flattens resources to their
owning task, and returns an immutable object graph ready for any renderer.

	wt, err := waymark.LoadFile("tutorial.md")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(wt.Title, wt.Time)

The parsing engine is pluggable: anything implementing ports.DocumentParser
can feed the assembler, and pkg/adapters/memory builds trees directly in
code.
*/
package waymark

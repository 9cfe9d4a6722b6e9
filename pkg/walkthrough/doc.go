/*
Package walkthrough contains the assembled domain model for Waymark.

It defines the fundamental entities of a guided walkthrough: the Walkthrough
root, its Tasks and Steps, the content block union (text and verification
checkpoints), and side-panel Resources. This package is kept pure and free of
external dependencies like I/O or parsing, following Hexagonal Architecture
principles.

All values are immutable once assembled: the graph is built in a single pass
over a parsed document tree and is only ever read afterwards.

# Key Entities

  - Walkthrough: Title, preamble markup, total time, ordered Tasks, and
    walkthrough-scoped Resources.
  - Task: A numbered unit with a declared duration, ordered content, and the
    resources collected from anywhere in its subtree.
  - Step: A numbered sub-unit holding narrative and verification content.
  - VerificationBlock: A checkpoint with optional success/fail follow-ups.
  - Resource: A side-panel reference with a service label and title.
*/
package walkthrough

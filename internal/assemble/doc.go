/*
Package assemble implements the classification-and-assembly core of Waymark.

Given a parsed document tree (pkg/ports), it derives the typed Walkthrough
graph (pkg/walkthrough) in one deterministic pass: nodes are classified into
a closed kind set from their context, nesting level, and type attribute;
verification checkpoints are linked to the nearest follow-up blocks in source
order; side-panel resources are harvested from anywhere in a task subtree and
reattached to their owner; and hierarchical numbering is resolved across
parent chains.
*/
package assemble

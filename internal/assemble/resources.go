package assemble

import (
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

// CollectResources walks every descendant of root in depth-first pre-order
// and returns all step-level resource nodes as Resources, regardless of how
// deep they are nested. The walk never descends into a matched resource
// node's own children.
func CollectResources(root ports.Node) []walkthrough.Resource {
	var out []walkthrough.Resource
	for _, child := range root.Blocks() {
		if IsStepResource(child) {
			out = append(out, newResource(child))
			continue
		}
		out = append(out, CollectResources(child)...)
	}
	return out
}

// SplitPreamble partitions the direct children of the preamble node into the
// kept content sequence and the extracted walkthrough-level resources. The
// discovery is deliberately non-recursive: walkthrough resources only count
// at preamble scope. Both results are fresh slices; the input tree is not
// mutated.
func SplitPreamble(preamble ports.Node) (kept []ports.Node, extracted []walkthrough.Resource) {
	for _, child := range preamble.Blocks() {
		if IsWalkthroughResource(child) {
			extracted = append(extracted, newResource(child))
			continue
		}
		kept = append(kept, child)
	}
	return kept, extracted
}

// newResource converts a matched side-panel node. The markup is the first
// child's rendered markup, or empty for a childless node; the node's own
// framing never leaks into the resource body.
func newResource(n ports.Node) walkthrough.Resource {
	markup := ""
	if blocks := n.Blocks(); len(blocks) > 0 {
		markup = blocks[0].Convert()
	}
	service, _ := n.Attribute(attrService)
	return walkthrough.Resource{
		Title:   n.Title(),
		Service: service,
		Markup:  markup,
	}
}

package assemble

import (
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

// buildStep assembles one step from its section node. The reduction is a
// single forward pass over the direct children, preserving source order of
// the surviving blocks:
//
//   - verification nodes are linked against the children that follow them
//   - resource nodes are skipped here; the enclosing task's recursive
//     collector owns them
//   - success/fail nodes are consumed through links and never stand alone
//   - everything else is captured as rendered text
func (a *Assembler) buildStep(n ports.Node) walkthrough.Step {
	children := n.Blocks()
	content := make(walkthrough.Content, 0, len(children))

	for i, child := range children {
		switch Classify(child) {
		case KindVerification:
			content = append(content, buildVerification(child, children[i+1:]))
		case KindVerificationSuccess, KindVerificationFail, KindStepResource:
			// Consumed elsewhere (links, task collector).
		default:
			content = append(content, walkthrough.TextBlock{Markup: child.Convert()})
		}
	}

	return walkthrough.Step{
		Title:   NumberedTitle(n),
		Content: content,
	}
}

// buildVerification renders the checkpoint and resolves its optional
// follow-up links against the remaining siblings.
func buildVerification(n ports.Node, rest []ports.Node) walkthrough.VerificationBlock {
	block := walkthrough.VerificationBlock{Markup: n.Convert()}
	if s := NextSuccess(rest); s != nil {
		block.Success = &walkthrough.SuccessBlock{Markup: s.Convert()}
	}
	if f := NextFail(rest); f != nil {
		block.Fail = &walkthrough.FailBlock{Markup: f.Convert()}
	}
	return block
}

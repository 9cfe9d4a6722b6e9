package assemble

import (
	"strconv"

	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

// buildTask assembles one task from its section node: numbered title,
// declared duration, the flattened resource set from the whole subtree, and
// the ordered content sequence of its direct children.
func (a *Assembler) buildTask(n ports.Node) walkthrough.Task {
	children := n.Blocks()
	content := make(walkthrough.Content, 0, len(children))

	for i, child := range children {
		switch Classify(child) {
		case KindStep:
			content = append(content, a.buildStep(child))
		case KindVerification:
			content = append(content, buildVerification(child, children[i+1:]))
		case KindVerificationSuccess, KindVerificationFail, KindStepResource:
			// Consumed elsewhere (links, resource collection).
		default:
			content = append(content, walkthrough.TextBlock{Markup: child.Convert()})
		}
	}

	task := walkthrough.Task{
		Title:     NumberedTitle(n),
		Time:      declaredTime(n),
		Markup:    n.Convert(),
		Content:   content,
		Resources: CollectResources(n),
	}

	a.logger.Debug("assembled task",
		"title", task.Title,
		"time", task.Time,
		"blocks", len(task.Content),
		"resources", len(task.Resources))

	return task
}

// declaredTime reads the duration attribute in minutes. Authoring mistakes
// in optional metadata must not abort assembly: absent, unparseable, or
// negative declarations silently default to 0.
func declaredTime(n ports.Node) int {
	raw, ok := n.Attribute(attrTime)
	if !ok {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

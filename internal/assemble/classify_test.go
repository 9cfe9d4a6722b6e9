package assemble_test

import (
	"testing"

	"github.com/aretw0/waymark/internal/assemble"
	"github.com/aretw0/waymark/pkg/adapters/memory"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDoc wires a small tree and returns handles to interesting nodes.
// Levels and numbering are resolved by the memory adapter on attachment.
func attachedToTask(child *memory.Node) ports.Node {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	task := memory.NewSection("Task")
	doc.Add(preamble, task)
	task.Add(child)
	return child
}

func TestClassifyTaskAndStep(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	task := memory.NewSection("Install")
	doc.Add(preamble, task)
	step := memory.NewSection("Unpack")
	task.Add(step)

	assert.True(t, assemble.IsTask(task))
	assert.False(t, assemble.IsStep(task))
	assert.Equal(t, assemble.KindTask, assemble.Classify(task))

	assert.True(t, assemble.IsStep(step))
	assert.False(t, assemble.IsTask(step))
	assert.Equal(t, assemble.KindStep, assemble.Classify(step))
}

func TestClassifyTypedBlocks(t *testing.T) {
	cases := []struct {
		name string
		node *memory.Node
		want assemble.Kind
	}{
		{"verification", memory.NewNode("quote", "check it").WithAttr("type", "verification"), assemble.KindVerification},
		{"success", memory.NewNode("quote", "nice").WithAttr("type", "verificationSuccess"), assemble.KindVerificationSuccess},
		{"fail", memory.NewNode("quote", "retry").WithAttr("type", "verificationFail"), assemble.KindVerificationFail},
		{"task resource", memory.NewSidebar("Repo").WithAttr("type", "taskResource"), assemble.KindStepResource},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := attachedToTask(tc.node)
			assert.Equal(t, tc.want, assemble.Classify(n))
		})
	}
}

func TestClassifyWalkthroughResource(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	doc.Add(preamble)
	res := memory.NewSidebar("Docs").WithAttr("type", "walkthroughResource")
	preamble.Add(res)

	require.Equal(t, 0, res.Level())
	assert.True(t, assemble.IsWalkthroughResource(res))
	assert.False(t, assemble.IsStepResource(res))
}

// A resource-typed sidebar at document scope must not classify as a step
// resource, and vice versa: the level requirement keeps the two variants
// disjoint.
func TestClassifyResourceLevelsAreDisjoint(t *testing.T) {
	taskScoped := attachedToTask(memory.NewSidebar("Repo").WithAttr("type", "taskResource"))
	assert.True(t, assemble.IsStepResource(taskScoped))
	assert.False(t, assemble.IsWalkthroughResource(taskScoped))

	// Same type tag, wrong scope: no typed predicate claims it.
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	doc.Add(preamble)
	misplaced := memory.NewSidebar("Repo").WithAttr("type", "taskResource")
	preamble.Add(misplaced)
	assert.Equal(t, assemble.KindText, assemble.Classify(misplaced))
}

// Exhaustiveness: a node with an arbitrary type attribute and non-matching
// context/level is claimed by the text fallback and nothing else.
func TestClassifyFallbackIsExhaustive(t *testing.T) {
	n := attachedToTask(memory.NewNode("paragraph", "hello").WithAttr("type", "somethingElse"))

	assert.False(t, assemble.IsTask(n))
	assert.False(t, assemble.IsStep(n))
	assert.False(t, assemble.IsVerification(n))
	assert.False(t, assemble.IsVerificationSuccess(n))
	assert.False(t, assemble.IsVerificationFail(n))
	assert.False(t, assemble.IsStepResource(n))
	assert.False(t, assemble.IsWalkthroughResource(n))
	assert.True(t, assemble.IsText(n))
	assert.Equal(t, assemble.KindText, assemble.Classify(n))
}

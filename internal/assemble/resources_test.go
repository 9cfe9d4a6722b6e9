package assemble_test

import (
	"testing"

	"github.com/aretw0/waymark/internal/assemble"
	"github.com/aretw0/waymark/pkg/adapters/memory"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resource(title, service, markup string) *memory.Node {
	sb := memory.NewSidebar(title).WithAttr("type", "taskResource").WithAttr("service", service)
	sb.Add(memory.NewNode("paragraph", markup))
	return sb
}

func TestCollectResourcesFlattensNesting(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	task := memory.NewSection("Task")
	doc.Add(preamble, task)

	step := memory.NewSection("Step")
	task.Add(
		resource("Repo", "github", "clone it"),
		step,
	)
	step.Add(
		memory.NewNode("paragraph", "narrative"),
		resource("Dashboard", "grafana", "watch it"),
	)

	got := assemble.CollectResources(task)
	require.Len(t, got, 2)

	// Document (pre-order) order: the task-level resource first.
	assert.Equal(t, "Repo", got[0].Title)
	assert.Equal(t, "github", got[0].Service)
	assert.Equal(t, "clone it", got[0].Markup)
	assert.Equal(t, "Dashboard", got[1].Title)
	assert.Equal(t, "grafana", got[1].Service)
}

func TestCollectResourcesDoesNotDescendIntoMatches(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	task := memory.NewSection("Task")
	doc.Add(preamble, task)

	// A resource whose body contains another resource-looking sidebar:
	// the outer match wins and the walk stops there.
	outer := resource("Outer", "svc", "body")
	outer.Add(memory.NewSidebar("Inner").WithAttr("type", "taskResource"))
	task.Add(outer)

	got := assemble.CollectResources(task)
	require.Len(t, got, 1)
	assert.Equal(t, "Outer", got[0].Title)
}

func TestCollectResourcesChildlessNodeHasEmptyMarkup(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	task := memory.NewSection("Task")
	doc.Add(preamble, task)
	task.Add(memory.NewSidebar("Bare").WithAttr("type", "taskResource"))

	got := assemble.CollectResources(task)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Markup)
}

func TestSplitPreamblePartitionsWithoutMutating(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	doc.Add(preamble)

	res := memory.NewSidebar("Docs").WithAttr("type", "walkthroughResource").WithAttr("service", "wiki")
	res.Add(memory.NewNode("paragraph", "read me"))
	preamble.Add(
		memory.NewNode("paragraph", "welcome"),
		res,
		memory.NewNode("paragraph", "enjoy"),
	)

	kept, extracted := assemble.SplitPreamble(preamble)

	require.Len(t, extracted, 1)
	assert.Equal(t, "Docs", extracted[0].Title)
	assert.Equal(t, "wiki", extracted[0].Service)
	assert.Equal(t, "read me", extracted[0].Markup)

	require.Len(t, kept, 2)
	assert.Equal(t, "welcome", kept[0].Convert())
	assert.Equal(t, "enjoy", kept[1].Convert())

	// The input tree keeps all three children; the partition is pure.
	assert.Len(t, preamble.Blocks(), 3)
}

func TestSplitPreambleIsNotRecursive(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	doc.Add(preamble)

	wrapper := memory.NewNode("open", "")
	buried := memory.NewSidebar("Buried").WithAttr("type", "walkthroughResource")
	wrapper.Add(buried)
	preamble.Add(wrapper)

	kept, extracted := assemble.SplitPreamble(preamble)
	assert.Empty(t, extracted)
	assert.Len(t, kept, 1)
}

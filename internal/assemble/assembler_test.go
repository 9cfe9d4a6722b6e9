package assemble_test

import (
	"testing"

	"github.com/aretw0/waymark/internal/assemble"
	"github.com/aretw0/waymark/pkg/adapters/memory"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/walkthrough"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a representative document:
//
//	Doc "Getting Started"
//	├── preamble: welcome text + walkthrough resource
//	├── task "Install" (time=5): text, verification(+success), resource
//	└── task "Configure" (time=10): two steps, the second with a nested
//	    resource and a verification with a fail follow-up
func fixture() ports.Document {
	doc := memory.NewDocument("Getting Started")

	preamble := memory.NewNode(ports.ContextPreamble, "")
	preamble.Add(
		memory.NewNode("paragraph", "<p>welcome</p>"),
		memory.NewSidebar("Handbook").WithAttr("type", "walkthroughResource").WithAttr("service", "wiki").
			Add(memory.NewNode("paragraph", "<p>read first</p>")),
	)

	install := memory.NewSection("Install").WithAttr("time", "5")
	configure := memory.NewSection("Configure").WithAttr("time", "10")
	doc.Add(preamble, install, configure)

	install.Add(
		memory.NewNode("paragraph", "<p>download</p>"),
		memory.NewNode("quote", "<p>binary runs?</p>").WithAttr("type", "verification"),
		memory.NewNode("quote", "<p>great</p>").WithAttr("type", "verificationSuccess"),
		memory.NewSidebar("Release page").WithAttr("type", "taskResource").WithAttr("service", "github").
			Add(memory.NewNode("paragraph", "<p>releases</p>")),
	)

	stepOne := memory.NewSection("Edit config")
	stepTwo := memory.NewSection("Restart")
	configure.Add(stepOne, stepTwo)
	stepOne.Add(memory.NewNode("paragraph", "<p>open the file</p>"))
	stepTwo.Add(
		memory.NewNode("paragraph", "<p>restart it</p>"),
		memory.NewSidebar("Service logs").WithAttr("type", "taskResource").WithAttr("service", "kibana").
			Add(memory.NewNode("paragraph", "<p>logs</p>")),
		memory.NewNode("quote", "<p>came back up?</p>").WithAttr("type", "verification"),
		memory.NewNode("quote", "<p>check the logs</p>").WithAttr("type", "verificationFail"),
	)

	return doc
}

func TestBuildEmptyDocumentFails(t *testing.T) {
	doc := memory.NewDocument("Empty")

	wt, err := assemble.New().Build(doc)
	require.Error(t, err)
	assert.Nil(t, wt)

	var structural *walkthrough.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestBuildAssemblesWholeGraph(t *testing.T) {
	wt, err := assemble.New().Build(fixture())
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", wt.Title)
	assert.Equal(t, "<p>welcome</p>", wt.Preamble)
	assert.Equal(t, 15, wt.Time)

	require.Len(t, wt.Resources, 1)
	assert.Equal(t, "Handbook", wt.Resources[0].Title)
	assert.Equal(t, "wiki", wt.Resources[0].Service)

	require.Len(t, wt.Tasks, 2)
	install, configure := wt.Tasks[0], wt.Tasks[1]

	assert.Equal(t, "1. Install", install.Title)
	assert.Equal(t, 5, install.Time)
	assert.Equal(t, "2. Configure", configure.Title)
	assert.Equal(t, 10, configure.Time)
}

func TestTaskContentAndLinks(t *testing.T) {
	wt, err := assemble.New().Build(fixture())
	require.NoError(t, err)
	install := wt.Tasks[0]

	// Text, then the verification; the success follow-up and the
	// resource never surface as content.
	require.Len(t, install.Content, 2)
	assert.Equal(t, walkthrough.TextBlock{Markup: "<p>download</p>"}, install.Content[0])

	check, ok := install.Content[1].(walkthrough.VerificationBlock)
	require.True(t, ok)
	assert.Equal(t, "<p>binary runs?</p>", check.Markup)
	require.True(t, check.HasSuccess())
	assert.Equal(t, "<p>great</p>", check.Success.Markup)
	assert.False(t, check.HasFail())

	require.Len(t, install.Resources, 1)
	assert.Equal(t, "Release page", install.Resources[0].Title)
}

func TestStepAssemblyAndNumbering(t *testing.T) {
	wt, err := assemble.New().Build(fixture())
	require.NoError(t, err)
	configure := wt.Tasks[1]

	require.Len(t, configure.Content, 2)
	one, ok := configure.Content[0].(walkthrough.Step)
	require.True(t, ok)
	two, ok := configure.Content[1].(walkthrough.Step)
	require.True(t, ok)

	assert.Equal(t, "2.1. Edit config", one.Title)
	assert.Equal(t, "2.2. Restart", two.Title)

	// The step's resource bubbled up to the task and left no trace in
	// the step content.
	require.Len(t, two.Content, 2)
	assert.Equal(t, walkthrough.TextBlock{Markup: "<p>restart it</p>"}, two.Content[0])
	check, ok := two.Content[1].(walkthrough.VerificationBlock)
	require.True(t, ok)
	assert.False(t, check.HasSuccess())
	require.True(t, check.HasFail())
	assert.Equal(t, "<p>check the logs</p>", check.Fail.Markup)

	require.Len(t, configure.Resources, 1)
	assert.Equal(t, "Service logs", configure.Resources[0].Title)
	assert.Equal(t, "kibana", configure.Resources[0].Service)
}

// Resource conservation: every resource node in a task subtree appears
// exactly once in that task's resource set and its markup never appears in
// any content sequence.
func TestResourceConservation(t *testing.T) {
	wt, err := assemble.New().Build(fixture())
	require.NoError(t, err)

	total := 0
	for _, task := range wt.Tasks {
		total += len(task.Resources)
		for _, block := range task.Content {
			switch b := block.(type) {
			case walkthrough.TextBlock:
				assert.NotContains(t, b.Markup, "releases")
				assert.NotContains(t, b.Markup, "logs")
			case walkthrough.Step:
				for _, inner := range b.Content {
					if tb, ok := inner.(walkthrough.TextBlock); ok {
						assert.NotContains(t, tb.Markup, "logs")
					}
				}
			}
		}
	}
	assert.Equal(t, 2, total)
}

func TestTimeDefaultsAndAggregation(t *testing.T) {
	doc := memory.NewDocument("Times")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	a := memory.NewSection("A").WithAttr("time", "5")
	b := memory.NewSection("B") // absent
	c := memory.NewSection("C").WithAttr("time", "10")
	d := memory.NewSection("D").WithAttr("time", "soon")  // unparseable
	e := memory.NewSection("E").WithAttr("time", "-3")    // negative
	doc.Add(preamble, a, b, c, d, e)

	wt, err := assemble.New().Build(doc)
	require.NoError(t, err)

	assert.Equal(t, 15, wt.Time)
	assert.Equal(t, 0, wt.Tasks[1].Time)
	assert.Equal(t, 0, wt.Tasks[3].Time)
	assert.Equal(t, 0, wt.Tasks[4].Time)
}

// Assembly is deterministic: the same tree yields deep-equal graphs.
func TestBuildIsIdempotent(t *testing.T) {
	doc := fixture()

	first, err := assemble.New().Build(doc)
	require.NoError(t, err)
	second, err := assemble.New().Build(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNonTaskTopLevelBlocksAreIgnored(t *testing.T) {
	doc := memory.NewDocument("Doc")
	preamble := memory.NewNode(ports.ContextPreamble, "")
	stray := memory.NewNode("paragraph", "<p>stray</p>")
	task := memory.NewSection("Only")
	doc.Add(preamble, stray, task)

	wt, err := assemble.New().Build(doc)
	require.NoError(t, err)
	require.Len(t, wt.Tasks, 1)
	assert.Equal(t, "1. Only", wt.Tasks[0].Title)
}

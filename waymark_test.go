package waymark_test

import (
	"testing"

	"github.com/aretw0/waymark"
	"github.com/aretw0/waymark/pkg/walkthrough"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tutorial = `# Deploy the service

Welcome to the deployment guide.

> {type=walkthroughResource service=wiki title="Runbook"}
>
> The on-call runbook.

## Build {time=5}

Compile the project.

> {type=verification}
>
> Did the build finish without errors?

> {type=verificationFail}
>
> Check your toolchain version.

## Ship {time=10}

### Push the image

Push to the registry.

> {type=taskResource service=docker title="Registry"}
>
> The team registry.

### Roll out

Apply the manifests.

> {type=verification}
>
> Are all pods ready?

> {type=verificationSuccess}
>
> You are done.
`

func TestLoadAssemblesEndToEnd(t *testing.T) {
	wt, err := waymark.Load([]byte(tutorial))
	require.NoError(t, err)

	assert.Equal(t, "Deploy the service", wt.Title)
	assert.Contains(t, wt.Preamble, "Welcome to the deployment guide.")
	assert.NotContains(t, wt.Preamble, "runbook")
	assert.Equal(t, 15, wt.Time)

	require.Len(t, wt.Resources, 1)
	assert.Equal(t, "Runbook", wt.Resources[0].Title)
	assert.Equal(t, "wiki", wt.Resources[0].Service)

	require.Len(t, wt.Tasks, 2)
	build, ship := wt.Tasks[0], wt.Tasks[1]

	assert.Equal(t, "1. Build", build.Title)
	assert.Equal(t, 5, build.Time)
	require.Len(t, build.Content, 2)
	check, ok := build.Content[1].(walkthrough.VerificationBlock)
	require.True(t, ok)
	assert.False(t, check.HasSuccess())
	require.True(t, check.HasFail())
	assert.Contains(t, check.Fail.Markup, "toolchain")

	assert.Equal(t, "2. Ship", ship.Title)
	require.Len(t, ship.Content, 2)
	push, ok := ship.Content[0].(walkthrough.Step)
	require.True(t, ok)
	rollout, ok := ship.Content[1].(walkthrough.Step)
	require.True(t, ok)
	assert.Equal(t, "2.1. Push the image", push.Title)
	assert.Equal(t, "2.2. Roll out", rollout.Title)

	require.Len(t, ship.Resources, 1)
	assert.Equal(t, "Registry", ship.Resources[0].Title)
	assert.Equal(t, "docker", ship.Resources[0].Service)

	// The step that declared the resource keeps only narrative and the
	// verification block.
	require.Len(t, push.Content, 1)
	require.Len(t, rollout.Content, 2)
	final, ok := rollout.Content[1].(walkthrough.VerificationBlock)
	require.True(t, ok)
	assert.True(t, final.HasSuccess())
}

func TestLoadEmptyDocumentFails(t *testing.T) {
	_, err := waymark.Load(nil)
	require.Error(t, err)

	var structural *walkthrough.StructuralError
	assert.ErrorAs(t, err, &structural)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := waymark.LoadFile("does/not/exist.md")
	require.Error(t, err)
}

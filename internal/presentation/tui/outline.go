package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/waymark/pkg/walkthrough"
)

// Outline renders a structural summary of an assembled walkthrough: tasks
// with their durations, steps, checkpoints, and attached resources.
func Outline(wt *walkthrough.Walkthrough) string {
	p := termenv.ColorProfile()
	var sb strings.Builder

	title := termenv.String(wt.Title).Bold().Foreground(p.Color("#818cf8"))
	fmt.Fprintf(&sb, "%s  (%d min)\n", title, wt.Time)

	for _, res := range wt.Resources {
		fmt.Fprintf(&sb, "  %s %s\n", badge(p, "resource"), resourceLabel(res))
	}

	for _, task := range wt.Tasks {
		taskTitle := termenv.String(task.Title).Bold()
		fmt.Fprintf(&sb, "\n%s  (%d min)\n", taskTitle, task.Time)
		writeContent(&sb, p, task.Content, "  ")
		for _, res := range task.Resources {
			fmt.Fprintf(&sb, "  %s %s\n", badge(p, "resource"), resourceLabel(res))
		}
	}

	return sb.String()
}

func writeContent(sb *strings.Builder, p termenv.Profile, content walkthrough.Content, indent string) {
	for _, block := range content {
		switch b := block.(type) {
		case walkthrough.Step:
			fmt.Fprintf(sb, "%s%s\n", indent, termenv.String(b.Title).Underline())
			writeContent(sb, p, b.Content, indent+"  ")
		case walkthrough.VerificationBlock:
			marks := ""
			if b.HasSuccess() {
				marks += " +ok"
			}
			if b.HasFail() {
				marks += " +fail"
			}
			fmt.Fprintf(sb, "%s%s%s\n", indent, badge(p, "check"), marks)
		}
	}
}

func badge(p termenv.Profile, label string) string {
	return termenv.String("[" + label + "]").Foreground(p.Color("#a78bfa")).String()
}

func resourceLabel(res walkthrough.Resource) string {
	if res.Service == "" {
		return res.Title
	}
	return fmt.Sprintf("%s (%s)", res.Title, res.Service)
}

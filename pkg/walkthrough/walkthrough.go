package walkthrough

// Walkthrough is the root of the assembled object graph. It owns every task,
// block, and resource transitively and is never mutated after assembly.
type Walkthrough struct {
	// Title is the document title.
	Title string `json:"title"`

	// Preamble holds the rendered markup of everything between the title
	// and the first task, with walkthrough-level resources removed.
	Preamble string `json:"preamble"`

	// Time is the total declared duration in minutes, the exact sum of
	// the tasks' times.
	Time int `json:"time"`

	// Tasks in document order.
	Tasks []Task `json:"tasks"`

	// Resources declared at walkthrough scope (extracted from the
	// preamble).
	Resources []Resource `json:"resources,omitempty"`
}

// Task is a major numbered unit of a walkthrough.
type Task struct {
	// Title carries the hierarchical numbering prefix, e.g. "2. Configure X".
	Title string `json:"title"`

	// Time is the declared duration in minutes. Absent or unparseable
	// declarations default to 0.
	Time int `json:"time"`

	// Markup is the task's rendered framing content, independent of the
	// structured Content sequence.
	Markup string `json:"markup"`

	// Content is the ordered sequence of steps, text, and verification
	// blocks. Resource nodes never appear here.
	Content Content `json:"content"`

	// Resources collected from anywhere in the task's subtree, in
	// document order, regardless of how deeply they were nested.
	Resources []Resource `json:"resources,omitempty"`
}

// Step is a numbered sub-unit of a task. Steps never hold resources
// directly; resources declared inside a step surface on the owning task.
type Step struct {
	// Title carries the hierarchical numbering prefix, e.g. "2.3. Unpack".
	Title string `json:"title"`

	// Content is the ordered sequence of text and verification blocks.
	Content Content `json:"content"`
}

func (Step) isBlock() {}

// Resource is a side-panel reference attachable at walkthrough, task, or
// step scope. Step-scoped resources are always flattened to their owning
// task.
type Resource struct {
	Title   string `json:"title"`
	Service string `json:"service"`
	Markup  string `json:"markup"`
}

package walkthrough

// StructuralError reports an input document that violates the minimal shape
// contract (e.g. a root with no child blocks). Assembly is all-or-nothing:
// no partial Walkthrough is returned alongside it.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}

package assemble

import (
	"github.com/aretw0/waymark/pkg/ports"
)

// Kind is the closed classification of a parsed node. Stringly-typed
// attribute discrimination happens once, here; everything downstream
// switches on Kind.
type Kind int

const (
	// KindText is the fallback: any node no typed predicate claims.
	KindText Kind = iota
	KindTask
	KindStep
	KindVerification
	KindVerificationSuccess
	KindVerificationFail
	KindStepResource
	KindWalkthroughResource
)

// Attribute names and type-tag values recognized on parsed nodes.
const (
	attrType    = "type"
	attrTime    = "time"
	attrService = "service"

	typeVerification        = "verification"
	typeVerificationSuccess = "verificationSuccess"
	typeVerificationFail    = "verificationFail"
	typeTaskResource        = "taskResource"
	typeWalkthroughResource = "walkthroughResource"
)

func hasType(n ports.Node, value string) bool {
	v, ok := n.Attribute(attrType)
	return ok && v == value
}

// IsTask matches a top-level sectioning container.
func IsTask(n ports.Node) bool {
	return n.Context() == ports.ContextSection && n.Level() == 1
}

// IsStep matches a second-level sectioning container.
func IsStep(n ports.Node) bool {
	return n.Context() == ports.ContextSection && n.Level() == 2
}

// IsVerification matches any node tagged as a verification checkpoint.
func IsVerification(n ports.Node) bool {
	return hasType(n, typeVerification)
}

// IsVerificationSuccess matches the success follow-up of a verification.
func IsVerificationSuccess(n ports.Node) bool {
	return hasType(n, typeVerificationSuccess)
}

// IsVerificationFail matches the fail follow-up of a verification.
func IsVerificationFail(n ports.Node) bool {
	return hasType(n, typeVerificationFail)
}

// IsStepResource matches a side-panel resource declared at task or step
// level.
func IsStepResource(n ports.Node) bool {
	return n.Context() == ports.ContextSidebar &&
		(n.Level() == 1 || n.Level() == 2) &&
		hasType(n, typeTaskResource)
}

// IsWalkthroughResource matches a side-panel resource declared at document
// scope (inside the preamble).
func IsWalkthroughResource(n ports.Node) bool {
	return n.Context() == ports.ContextSidebar &&
		n.Level() == 0 &&
		hasType(n, typeWalkthroughResource)
}

// IsText is true iff no typed predicate matches. It is defined as the
// negation of the typed predicates combined, so adding a new typed kind
// automatically narrows the fallback.
func IsText(n ports.Node) bool {
	return Classify(n) == KindText
}

// Classify resolves a node to exactly one Kind. The typed predicates are
// evaluated first; KindText is the final fallback.
func Classify(n ports.Node) Kind {
	switch {
	case IsTask(n):
		return KindTask
	case IsStep(n):
		return KindStep
	case IsVerification(n):
		return KindVerification
	case IsVerificationSuccess(n):
		return KindVerificationSuccess
	case IsVerificationFail(n):
		return KindVerificationFail
	case IsStepResource(n):
		return KindStepResource
	case IsWalkthroughResource(n):
		return KindWalkthroughResource
	default:
		return KindText
	}
}

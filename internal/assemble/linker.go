package assemble

import (
	"github.com/aretw0/waymark/pkg/ports"
)

// NextSuccess scans the siblings strictly after a verification node and
// returns the nearest success follow-up, or nil if none exists before the
// next verification node (a new checkpoint resets the search) or the end of
// the sequence.
func NextSuccess(rest []ports.Node) ports.Node {
	return nextFollowUp(rest, KindVerificationSuccess)
}

// NextFail is NextSuccess for the fail follow-up. The two searches run
// independently with the same stopping rule, since a verification block may
// carry one, both, or neither link.
func NextFail(rest []ports.Node) ports.Node {
	return nextFollowUp(rest, KindVerificationFail)
}

func nextFollowUp(rest []ports.Node, target Kind) ports.Node {
	for _, n := range rest {
		switch Classify(n) {
		case target:
			return n
		case KindVerification:
			return nil
		}
	}
	return nil
}

package walkthrough

// Block is the closed union of content kinds that may appear in a task or
// step content sequence: Step, TextBlock, or VerificationBlock. Membership
// is mutually exclusive.
type Block interface {
	isBlock()
}

// Content is an ordered sequence of blocks. It carries its own JSON
// (de)serialization so mixed sequences survive a round-trip; see
// serialization.go.
type Content []Block

// TextBlock is the fallback content kind: opaque rendered markup.
type TextBlock struct {
	Markup string `json:"markup"`
}

func (TextBlock) isBlock() {}

// VerificationBlock is a checkpoint instructing the reader to confirm a
// condition, optionally paired with success and/or fail follow-up messaging.
type VerificationBlock struct {
	Markup string `json:"markup"`

	// Success and Fail are nil when no matching follow-up block exists
	// before the next verification block in the same sequence.
	Success *SuccessBlock `json:"success,omitempty"`
	Fail    *FailBlock    `json:"fail,omitempty"`
}

func (VerificationBlock) isBlock() {}

// HasSuccess reports whether a success follow-up was linked.
func (b VerificationBlock) HasSuccess() bool { return b.Success != nil }

// HasFail reports whether a fail follow-up was linked.
func (b VerificationBlock) HasFail() bool { return b.Fail != nil }

// SuccessBlock carries the messaging shown when a verification passes. It
// only ever exists linked from a VerificationBlock, never standalone in a
// content sequence.
type SuccessBlock struct {
	Markup string `json:"markup"`
}

// FailBlock carries the messaging shown when a verification fails. Like
// SuccessBlock, it only exists behind a VerificationBlock link.
type FailBlock struct {
	Markup string `json:"markup"`
}

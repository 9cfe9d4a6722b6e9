package walkthrough

import (
	"encoding/json"
	"fmt"
)

// Block kind discriminators used by the JSON envelope.
const (
	kindStep         = "step"
	kindText         = "text"
	kindVerification = "verification"
)

// blockEnvelope is the tagged wire form of a Block. Only the fields relevant
// to the tagged kind are populated.
type blockEnvelope struct {
	Kind    string        `json:"kind"`
	Title   string        `json:"title,omitempty"`
	Content Content       `json:"content,omitempty"`
	Markup  string        `json:"markup,omitempty"`
	Success *SuccessBlock `json:"success,omitempty"`
	Fail    *FailBlock    `json:"fail,omitempty"`
}

// MarshalJSON serializes the sequence as a list of kind-tagged envelopes.
func (c Content) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}

	raw := make([]blockEnvelope, 0, len(c))
	for i, block := range c {
		switch b := block.(type) {
		case Step:
			raw = append(raw, blockEnvelope{Kind: kindStep, Title: b.Title, Content: b.Content})
		case TextBlock:
			raw = append(raw, blockEnvelope{Kind: kindText, Markup: b.Markup})
		case VerificationBlock:
			raw = append(raw, blockEnvelope{Kind: kindVerification, Markup: b.Markup, Success: b.Success, Fail: b.Fail})
		default:
			return nil, fmt.Errorf("block %d: unknown kind %T", i, block)
		}
	}

	return json.Marshal(raw)
}

// UnmarshalJSON rebuilds the typed sequence from kind-tagged envelopes.
func (c *Content) UnmarshalJSON(data []byte) error {
	if c == nil {
		return fmt.Errorf("content: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*c = nil
		return nil
	}

	var raw []blockEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := make(Content, 0, len(raw))
	for i, env := range raw {
		switch env.Kind {
		case kindStep:
			parsed = append(parsed, Step{Title: env.Title, Content: env.Content})
		case kindText:
			parsed = append(parsed, TextBlock{Markup: env.Markup})
		case kindVerification:
			parsed = append(parsed, VerificationBlock{Markup: env.Markup, Success: env.Success, Fail: env.Fail})
		default:
			return fmt.Errorf("block %d: unknown kind %q", i, env.Kind)
		}
	}

	*c = parsed
	return nil
}

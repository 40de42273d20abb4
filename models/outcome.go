package models

import "fmt"

// OutcomeKind classifies what happened to a single post during a scan.
type OutcomeKind string

const (
	OutcomeReplied OutcomeKind = "replied"
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeFailed  OutcomeKind = "failed"
)

// Outcome records the result of processing one post. A post is either
// replied to, skipped (nothing to do), or failed (something went wrong
// with this post only). Failures never abort the surrounding batch.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Reason string      `json:"reason,omitempty"`
}

func Replied() Outcome {
	return Outcome{Kind: OutcomeReplied}
}

func Skipped(reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Reason: reason}
}

func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

func (o Outcome) String() string {
	if o.Reason == "" {
		return string(o.Kind)
	}
	return fmt.Sprintf("%s (%s)", o.Kind, o.Reason)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

// CheckOutcome is the tri-state result of an optional supplementary
// check. Not supplying an input is structurally distinct from supplying
// one that fails.
type CheckOutcome int

const (
	// NotEvaluated means the input was not supplied.
	NotEvaluated CheckOutcome = iota
	// Passed means the input was supplied and valid.
	Passed
	// Failed means the input was supplied and invalid.
	Failed
)

func (o CheckOutcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "not_evaluated"
	}
}

// Evaluated reports whether the check ran at all.
func (o CheckOutcome) Evaluated() bool { return o != NotEvaluated }

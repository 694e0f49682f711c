// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package luhn implements the ISO/IEC 7812-1 mod-10 checksum used for
// payment-card check digits, including a step-by-step diagnostic trace
// and a generator for Luhn-valid test numbers.
package luhn

// IsValid reports whether the digit string passes the mod-10 check.
// Non-digit input always fails; validity of the character set is the
// caller's concern, this only guards against panics.
func IsValid(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9 // digit sum of a two-digit product
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CheckDigit computes the digit that must be appended to partial to
// make the whole string Luhn-valid. The second return is false when
// partial is empty or contains a non-digit.
func CheckDigit(partial string) (byte, bool) {
	if partial == "" {
		return 0, false
	}
	sum := 0
	double := true // the appended digit occupies the undoubled slot
	for i := len(partial) - 1; i >= 0; i-- {
		c := partial[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10), true
}

// Step records how one digit contributed to the checksum. Position is
// counted from the left as displayed, 1-based.
type Step struct {
	Position   int  `json:"position"`
	Digit      int  `json:"digit"`
	Doubled    bool `json:"doubled"`
	Value      int  `json:"value"` // digit after doubling and digit-summing
	RunningSum int  `json:"running_sum"`
}

// Trace is the full diagnostic record of one checksum run.
type Trace struct {
	Input string `json:"input"`
	Steps []Step `json:"steps"`
	Total int    `json:"total"`
	Valid bool   `json:"valid"`
}

// Steps runs the checksum over digits capturing every position, for
// diagnostic or educational output. Returns nil for input holding any
// non-digit.
func Steps(digits string) *Trace {
	if digits == "" {
		return nil
	}
	t := &Trace{Input: digits, Steps: make([]Step, len(digits))}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return nil
		}
		d := int(c - '0')
		v := d
		if double {
			v = d * 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		t.Steps[i] = Step{
			Position: i + 1,
			Digit:    d,
			Doubled:  double,
			Value:    v,
		}
		double = !double
	}
	// Running sums accumulate left to right for readable output.
	run := 0
	for i := range t.Steps {
		run += t.Steps[i].Value
		t.Steps[i].RunningSum = run
	}
	t.Total = sum
	t.Valid = sum%10 == 0
	return t
}

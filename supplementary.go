// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import (
	"regexp"

	"cardscope/card"
	"cardscope/internal/expiry"
)

// namePattern accepts 2-26 Latin letters, spaces, hyphens and
// apostrophes.
var namePattern = regexp.MustCompile(`^[A-Za-z '-]{2,26}$`)

// applySupplementary layers the expiry, CVV and cardholder-name checks
// over a base result. Each check is independent and tri-state: inputs
// that were not supplied stay NotEvaluated. A supplementary failure
// downgrades overall validity but never overwrites a PAN-level failure
// reason or erases the classification already computed.
func (v *Validator) applySupplementary(res *card.CardResult, in FullInput) {
	if in.Expiry != "" {
		v.checkExpiry(res, in.Expiry)
	}
	if in.CVV != "" {
		v.checkCVV(res, in.CVV)
	}
	if in.CardholderName != "" {
		v.checkName(res, in.CardholderName)
	}
}

func (v *Validator) checkExpiry(res *card.CardResult, raw string) {
	d, err := expiry.Parse(raw)
	if err != nil {
		res.ExpiryCheck = card.Failed
		v.downgrade(res, card.InvalidExpiryDate)
		return
	}
	if d.Expired(v.now()) {
		res.ExpiryCheck = card.Failed
		v.downgrade(res, card.CardExpired)
		return
	}
	res.ExpiryCheck = card.Passed
}

func (v *Validator) checkCVV(res *card.CardResult, cvv string) {
	want := res.CVVLength
	if want == 0 {
		want = 3
	}
	if len(cvv) != want || !isDigits(cvv) {
		res.CVVCheck = card.Failed
		v.downgrade(res, card.InvalidCVV)
		return
	}
	res.CVVCheck = card.Passed
}

func (v *Validator) checkName(res *card.CardResult, name string) {
	if !namePattern.MatchString(name) {
		res.NameCheck = card.Failed
		v.downgrade(res, card.InvalidCardholderName)
		return
	}
	res.NameCheck = card.Passed
}

// downgrade flips overall validity for a supplementary failure. The
// failure reason is recorded only when the PAN itself had passed, so a
// PAN-level reason is never overwritten.
func (v *Validator) downgrade(res *card.CardResult, reason card.FailureReason) {
	if res.Reason == card.NoFailure {
		res.Reason = reason
		res.ReasonText = reason.Message()
	}
	res.Valid = false
}

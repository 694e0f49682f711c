// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import (
	"cardscope/luhn"
)

// CardResult is the combined classification and validation outcome for a
// single PAN. The pipeline populates it once; callers must treat it as
// read-only. Every display field is a bilingual Text pair, and the
// *Name accessors resolve the pair against the stored Language, so the
// active language can be changed after the fact (see WithLanguage)
// without recomputing anything.
type CardResult struct {
	// Input and derived substrings.
	RawInput    string `json:"raw_input"`
	PAN         string `json:"pan"`          // sanitized digits
	IIN         string `json:"iin"`          // first six digits
	ExtendedIIN string `json:"extended_iin"` // first eight digits, when present
	LastFour    string `json:"last_four"`
	Length      int    `json:"length"`
	CheckDigit  string `json:"check_digit"`

	// Validation outcomes.
	IsNumeric   bool          `json:"is_numeric"`
	LengthValid bool          `json:"length_valid"`
	LuhnValid   bool          `json:"luhn_valid"`
	Valid       bool          `json:"valid"`
	Reason      FailureReason `json:"reason"`
	ReasonText  Text          `json:"reason_text,omitempty"`

	// Classification.
	Network      Text  `json:"network"`
	CardType     Text  `json:"card_type"`
	Category     Text  `json:"category"`
	ValidLengths []int `json:"valid_lengths"`
	CVVLength    int   `json:"cvv_length"`

	// Issuer and geography. Unknown when only a network range matched.
	IssuerName    Text   `json:"issuer_name"`
	CountryCode   string `json:"country_code,omitempty"`
	CountryName   Text   `json:"country_name"`
	Currency      string `json:"currency,omitempty"`
	Region        Text   `json:"region"`
	Domestic      bool   `json:"domestic"`
	IssuerWebsite string `json:"issuer_website,omitempty"`
	IssuerPhone   string `json:"issuer_phone,omitempty"`

	// Tokenization.
	SupportsTokenization bool   `json:"supports_tokenization"`
	SimulatedToken       string `json:"simulated_token,omitempty"`

	// Display forms, populated only for valid results.
	Formatted string `json:"formatted,omitempty"`
	Masked    string `json:"masked,omitempty"`

	// Optional diagnostic trace of the checksum run.
	Trace *luhn.Trace `json:"trace,omitempty"`

	// Supplementary checks, evaluated only by the full entry point and
	// only for inputs that were supplied.
	ExpiryCheck CheckOutcome `json:"expiry_check"`
	CVVCheck    CheckOutcome `json:"cvv_check"`
	NameCheck   CheckOutcome `json:"name_check"`

	// Contextual notes, bilingual like every display field.
	Notes []Text `json:"notes,omitempty"`

	// Language the *Name accessors resolve to.
	Language Language `json:"language"`
}

// NetworkName resolves the network display name to the active language.
func (r *CardResult) NetworkName() string { return r.Network.In(r.Language) }

// TypeName resolves the functional card type (debit, credit, prepaid).
func (r *CardResult) TypeName() string { return r.CardType.In(r.Language) }

// CategoryName resolves the card tier (classic, gold, platinum, ...).
func (r *CardResult) CategoryName() string { return r.Category.In(r.Language) }

// Issuer resolves the issuing bank display name.
func (r *CardResult) Issuer() string { return r.IssuerName.In(r.Language) }

// Country resolves the issuing country display name.
func (r *CardResult) Country() string { return r.CountryName.In(r.Language) }

// RegionName resolves the geographic region display name.
func (r *CardResult) RegionName() string { return r.Region.In(r.Language) }

// FailureMessage resolves the failure description, empty when valid.
func (r *CardResult) FailureMessage() string { return r.ReasonText.In(r.Language) }

// NoteList resolves every contextual note to the active language.
func (r *CardResult) NoteList() []string {
	if len(r.Notes) == 0 {
		return nil
	}
	out := make([]string, len(r.Notes))
	for i, n := range r.Notes {
		out[i] = n.In(r.Language)
	}
	return out
}

// WithLanguage returns a shallow copy resolving to the given language.
// The receiver (possibly shared with the cache) is left untouched; both
// language payloads are already populated so nothing is recomputed.
func (r *CardResult) WithLanguage(l Language) *CardResult {
	cp := *r
	cp.Language = l
	return &cp
}

// AddNote appends a bilingual contextual note. Intended for pipeline
// use while the result is still being built.
func (r *CardResult) AddNote(en, ar string) {
	r.Notes = append(r.Notes, T(en, ar))
}

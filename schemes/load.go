// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schemes

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cardscope/card"
)

// Load parses a Tables document from YAML bytes, normalizes the
// bilingual pairs and validates the structural invariants. The input
// replaces, never merges with, the built-in tables.
func Load(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "parse prefix tables")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the table invariants: six-digit unique issuer
// prefixes, digit-only range markers, non-empty length sets, CVV
// lengths of 3 or 4. Bilingual pairs with one empty side are filled
// from the other so a half-populated pair cannot reach the classifier.
func (t *Tables) Validate() error {
	seen := make(map[string]bool, len(t.Issuers))
	for i := range t.Issuers {
		rec := &t.Issuers[i]
		if len(rec.Prefix) != 6 || !allDigits(rec.Prefix) {
			return errors.Errorf("issuer %d: prefix %q must be exactly 6 digits", i, rec.Prefix)
		}
		if seen[rec.Prefix] {
			return errors.Errorf("issuer %d: duplicate prefix %q", i, rec.Prefix)
		}
		seen[rec.Prefix] = true
		if rec.CVVLength != 3 && rec.CVVLength != 4 {
			return errors.Errorf("issuer %s: cvv length must be 3 or 4", rec.Prefix)
		}
		if err := validLengthSet(rec.Lengths); err != nil {
			return errors.Wrapf(err, "issuer %s", rec.Prefix)
		}
		rec.Network = normalizePair(rec.Network)
		rec.CardType = normalizePair(rec.CardType)
		rec.Category = normalizePair(rec.Category)
		rec.IssuerName = normalizePair(rec.IssuerName)
		rec.CountryName = normalizePair(rec.CountryName)
		rec.Region = normalizePair(rec.Region)
		if rec.IssuerName.IsZero() {
			return errors.Errorf("issuer %s: issuer name is required", rec.Prefix)
		}
	}
	for i := range t.Ranges {
		r := &t.Ranges[i]
		if r.Start == "" || !allDigits(r.Start) {
			return errors.Errorf("range %d: start %q must be digits", i, r.Start)
		}
		if r.End == "" || !allDigits(r.End) {
			return errors.Errorf("range %d: end %q must be digits", i, r.End)
		}
		if r.CVVLength != 3 && r.CVVLength != 4 {
			return errors.Errorf("range %d (%s): cvv length must be 3 or 4", i, r.Start)
		}
		if err := validLengthSet(r.Lengths); err != nil {
			return errors.Wrapf(err, "range %d (%s)", i, r.Start)
		}
		r.Network = normalizePair(r.Network)
		if r.Network.IsZero() {
			return errors.Errorf("range %d (%s): network is required", i, r.Start)
		}
	}
	return nil
}

// SortRangesBySpecificity reorders the range list so the first-match
// scan cannot be defeated by authoring order: longer start markers
// first, then narrower intervals. Makes the specific-before-general
// invariant structural instead of convention-based.
func (t *Tables) SortRangesBySpecificity() {
	sort.SliceStable(t.Ranges, func(i, j int) bool {
		a, b := &t.Ranges[i], &t.Ranges[j]
		if len(a.Start) != len(b.Start) {
			return len(a.Start) > len(b.Start)
		}
		return a.width() < b.width()
	})
}

// ValidateRangeOrder reports the first broad range that occurs before a
// narrower range it would shadow, making the later one unreachable.
func (t *Tables) ValidateRangeOrder() error {
	for i := range t.Ranges {
		for j := i + 1; j < len(t.Ranges); j++ {
			if t.Ranges[i].shadows(&t.Ranges[j]) {
				return errors.Errorf("range %q-%q at %d shadows narrower range %q-%q at %d",
					t.Ranges[i].Start, t.Ranges[i].End, i, t.Ranges[j].Start, t.Ranges[j].End, j)
			}
		}
	}
	return nil
}

// shadows reports whether every PAN matching other would already have
// matched r. Only a range at least as short (broad) as other can
// shadow it.
func (r *NetworkRange) shadows(other *NetworkRange) bool {
	w := len(r.Start)
	if len(other.Start) < w {
		return false
	}
	lo, _ := strconv.ParseUint(r.Start, 10, 64)
	hi, _ := strconv.ParseUint(normalizeEnd(r.End, w), 10, 64)
	oLo, _ := strconv.ParseUint(other.Start[:w], 10, 64)
	oHi, _ := strconv.ParseUint(normalizeEnd(other.End, len(other.Start))[:w], 10, 64)
	return oLo >= lo && oHi <= hi
}

// width is the numeric size of the interval at start-marker precision.
func (r *NetworkRange) width() uint64 {
	lo, _ := strconv.ParseUint(r.Start, 10, 64)
	hi, _ := strconv.ParseUint(normalizeEnd(r.End, len(r.Start)), 10, 64)
	if hi < lo {
		return 0
	}
	return hi - lo
}

func normalizePair(t card.Text) card.Text {
	if t.IsZero() {
		return t
	}
	return card.T(t.EN, t.AR)
}

func validLengthSet(lengths []int) error {
	if len(lengths) == 0 {
		return errors.New("length set must not be empty")
	}
	for _, l := range lengths {
		if l < 12 || l > 19 {
			return errors.Errorf("length %d outside 12..19", l)
		}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

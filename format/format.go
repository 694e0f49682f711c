// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package format renders PANs for display: separator grouping, masking,
// and a colorized rendering of the checksum trace.
package format

import "strings"

// PAN groups a card number for display: 4-6-5 for 15-digit numbers,
// otherwise blocks of four. Existing spaces and dashes are stripped
// first; masked '*' positions group like digits, so PAN and Mask
// compose in either order.
func PAN(s string) string {
	units := stripSeparators(s)
	if units == "" {
		return ""
	}
	groups := []int{4, 4, 4, 4, 4}
	if len(units) == 15 {
		groups = []int{4, 6, 5}
	}
	var sb strings.Builder
	sb.Grow(len(units) + 4)
	rest := units
	for _, g := range groups {
		if rest == "" {
			break
		}
		if g > len(rest) {
			g = len(rest)
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(rest[:g])
		rest = rest[g:]
	}
	if rest != "" {
		sb.WriteByte(' ')
		sb.WriteString(rest)
	}
	return sb.String()
}

// Mask hides the middle digits of a PAN, keeping the first six and the
// last four visible. Separators already present are left in place, so a
// grouped number stays grouped.
func Mask(s string) string {
	total := 0
	for i := 0; i < len(s); i++ {
		if isUnit(s[i]) {
			total++
		}
	}
	if total == 0 {
		return s
	}
	if total <= 4 {
		return maskBetween(s, 0, total)
	}
	if total <= 10 {
		// Too short to keep both ends; hide everything but the tail.
		return maskBetween(s, 0, total-4)
	}
	return maskBetween(s, 6, total-4)
}

// maskBetween replaces unit positions in [from, to) with '*'.
func maskBetween(s string, from, to int) string {
	out := []byte(s)
	idx := 0
	for i := 0; i < len(out); i++ {
		if !isUnit(out[i]) {
			continue
		}
		if idx >= from && idx < to {
			out[i] = '*'
		}
		idx++
	}
	return string(out)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// isUnit treats digits and mask characters as groupable positions.
func isUnit(c byte) bool {
	return (c >= '0' && c <= '9') || c == '*'
}

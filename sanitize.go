// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import "strings"

// Sanitize strips space and dash separators from raw input and trims
// surrounding whitespace. Pure function; an absent input sanitizes to
// the empty string, which the pipeline's first guard rejects.
func Sanitize(raw string) string {
	s := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	return strings.TrimSpace(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package luhn

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// GenerateTestNumber fills the body between prefix and the check digit
// with random digits and appends a valid check digit. The output is a
// synthetic test value only; it does not represent a real account.
func GenerateTestNumber(prefix string, totalLength int) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefix is required")
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return "", fmt.Errorf("prefix must contain digits only")
		}
	}
	if totalLength < 13 || totalLength > 19 {
		return "", fmt.Errorf("total length must be 13..19, got %d", totalLength)
	}
	fill := totalLength - 1 - len(prefix)
	if fill < 0 {
		return "", fmt.Errorf("prefix %q too long for length %d", prefix, totalLength)
	}
	body, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	partial := prefix + body
	cd, _ := CheckDigit(partial)
	return partial + string(cd), nil
}

// randomDigits draws uniformly distributed digit characters using
// rejection sampling: only bytes below 250 are accepted before the
// mod-10 reduction, so no residue is favored.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 32)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if buf[i] < threshold {
				sb.WriteByte('0' + buf[i]%10)
			}
		}
	}
	return sb.String(), nil
}

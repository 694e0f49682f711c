// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import "cardscope/card"

// defaultValidator backs the package-level convenience entry points.
var defaultValidator = New()

// Classify runs the fast path on the shared default validator.
func Classify(pan string, opts Options) *card.CardResult {
	return defaultValidator.Classify(pan, opts)
}

// ClassifyFull runs the full entry point on the shared default
// validator.
func ClassifyFull(pan string, in FullInput) *card.CardResult {
	return defaultValidator.ClassifyFull(pan, in)
}

// ClearCache clears the default validator's result cache.
func ClearCache() { defaultValidator.ClearCache() }

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import (
	"time"

	"cardscope/card"
	"cardscope/schemes"
)

// Options control the fast-path entry point.
type Options struct {
	// IncludeToken requests a simulated token on tokenization-eligible
	// results. Not a real tokenization scheme.
	IncludeToken bool

	// IncludeTrace attaches the step-by-step checksum trace.
	IncludeTrace bool

	// Language selects the active side of every bilingual field. The
	// zero value is English.
	Language card.Language
}

// FullInput feeds the full entry point. Empty supplementary fields are
// simply not evaluated.
type FullInput struct {
	Options

	Expiry         string // MMYY or MMYYYY, '/' '-' and spaces tolerated
	CVV            string
	CardholderName string
}

// Option configures a Validator.
type Option func(*Validator)

// WithTables replaces the built-in prefix tables.
func WithTables(t *schemes.Tables) Option {
	return func(v *Validator) {
		if t != nil {
			v.tables = t
		}
	}
}

// WithObserver installs the logging seam collaborator.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observer = o
		}
	}
}

// WithCacheCapacity bounds the result cache entry count.
func WithCacheCapacity(n int) Option {
	return func(v *Validator) { v.cacheCapacity = n }
}

// WithLanguage sets the default result language.
func WithLanguage(l card.Language) Option {
	return func(v *Validator) { v.lang = l }
}

// WithClock overrides the time source used by expiry checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

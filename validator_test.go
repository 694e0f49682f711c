// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardscope/card"
	"cardscope/luhn"
	"cardscope/schemes"
)

// countingObserver counts pipeline computations; cache hits must not
// reach it.
type countingObserver struct {
	mu              sync.Mutex
	classifications int
	faults          int
	lastMasked      string
	lastNetwork     string
	lastReason      card.FailureReason
}

func (o *countingObserver) OnClassification(masked string, valid bool, network string, reason card.FailureReason) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.classifications++
	o.lastMasked = masked
	o.lastNetwork = network
	o.lastReason = reason
}

func (o *countingObserver) OnInternalFault(err error, masked string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.faults++
	o.lastMasked = masked
}

func (o *countingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.classifications
}

func TestClassifyVisaFallback(t *testing.T) {
	res := New().Classify("4111111111111111", Options{})
	assert.True(t, res.Valid)
	assert.Equal(t, card.NoFailure, res.Reason)
	assert.Equal(t, "Visa", res.NetworkName())
	assert.Equal(t, "فيزا", res.Network.AR)
	assert.Equal(t, []int{13, 16, 19}, res.ValidLengths)
	assert.Equal(t, 3, res.CVVLength)
	assert.True(t, res.IsNumeric)
	assert.True(t, res.LengthValid)
	assert.True(t, res.LuhnValid)

	// No issuer record for the generic test BIN.
	assert.True(t, res.IssuerName.IsZero())
	assert.Empty(t, res.CountryCode)
	assert.False(t, res.Domestic)

	assert.Equal(t, "411111", res.IIN)
	assert.Equal(t, "41111111", res.ExtendedIIN)
	assert.Equal(t, "1111", res.LastFour)
	assert.Equal(t, "1", res.CheckDigit)
	assert.Equal(t, 16, res.Length)
	assert.Equal(t, "4111 1111 1111 1111", res.Formatted)
	assert.Equal(t, "411111******1111", res.Masked)
}

func TestClassifyMeezaIssuer(t *testing.T) {
	res := New().Classify("5078031234567890", Options{})
	assert.True(t, res.Valid)
	assert.Equal(t, "Meeza", res.NetworkName())
	assert.Equal(t, "National Bank of Egypt", res.Issuer())
	assert.Equal(t, "EG", res.CountryCode)
	assert.Equal(t, "EGP", res.Currency)
	assert.True(t, res.Domestic)
	assert.Equal(t, "Debit", res.TypeName())

	// The domestic notice is attached in both languages.
	notes := res.NoteList()
	require.NotEmpty(t, notes)
	assert.Contains(t, strings.Join(notes, "\n"), "inside Egypt")
}

func TestClassifyLuhnFailure(t *testing.T) {
	res := New().Classify("4111111111111112", Options{})
	assert.False(t, res.Valid)
	assert.Equal(t, card.LuhnCheckFailed, res.Reason)
	assert.False(t, res.LuhnValid)
	assert.True(t, res.LengthValid)
	// Classification sticks even though validation failed.
	assert.Equal(t, "Visa", res.NetworkName())
	assert.NotEmpty(t, res.FailureMessage())
}

func TestClassifyEmptyAndNonDigit(t *testing.T) {
	for _, in := range []string{"", "   ", " - - "} {
		res := New().Classify(in, Options{})
		assert.False(t, res.Valid, "input %q", in)
		assert.Equal(t, card.NullOrEmpty, res.Reason, "input %q", in)
	}

	res := New().Classify("123abc4567890123", Options{})
	assert.False(t, res.Valid)
	assert.Equal(t, card.ContainsNonDigits, res.Reason)
	assert.False(t, res.IsNumeric)
}

func TestClassifyInvalidLength(t *testing.T) {
	// 14 digits under a Visa prefix; Visa accepts 13, 16 and 19.
	res := New().Classify("41111111111111", Options{})
	assert.False(t, res.Valid)
	assert.Equal(t, card.InvalidLength, res.Reason)
	assert.False(t, res.LengthValid)
	assert.Contains(t, res.FailureMessage(), "13, 16, 19")
	assert.Equal(t, "Visa", res.NetworkName())
}

func TestClassifyUnknownNetwork(t *testing.T) {
	// Luhn-valid 16 digits with an unassigned leading digit.
	body := "999999999999999"
	cd, ok := luhn.CheckDigit(body)
	require.True(t, ok)

	res := New().Classify(body+string(cd), Options{})
	assert.True(t, res.Valid)
	assert.Equal(t, "Unknown", res.NetworkName())
	assert.Equal(t, "غير معروف", res.Network.AR)
	assert.Equal(t, []int{13, 14, 15, 16, 17, 18, 19}, res.ValidLengths)
	assert.Equal(t, 3, res.CVVLength)
	assert.False(t, res.SupportsTokenization)
}

func TestClassifyTrace(t *testing.T) {
	res := New().Classify("4111111111111111", Options{IncludeTrace: true})
	require.NotNil(t, res.Trace)
	assert.True(t, res.Trace.Valid)
	assert.Len(t, res.Trace.Steps, 16)

	// Trace also attaches to checksum failures for diagnosis.
	res = New().Classify("4111111111111112", Options{IncludeTrace: true})
	require.NotNil(t, res.Trace)
	assert.False(t, res.Trace.Valid)

	res = New().Classify("4111111111111111", Options{})
	assert.Nil(t, res.Trace)
}

func TestSimulatedToken(t *testing.T) {
	v := New()
	res := v.Classify("4111111111111111", Options{IncludeToken: true})
	require.True(t, res.SupportsTokenization)
	require.True(t, strings.HasPrefix(res.SimulatedToken, "tok-"))

	// Deterministic across validators.
	again := New().Classify("4111111111111111", Options{IncludeToken: true})
	assert.Equal(t, res.SimulatedToken, again.SimulatedToken)

	// Absent unless requested or ineligible.
	assert.Empty(t, v.Classify("4111111111111111", Options{}).SimulatedToken)
	noTok := v.Classify("6212341111111111", Options{IncludeToken: true})
	assert.Empty(t, noTok.SimulatedToken)
}

func TestClassifyArabic(t *testing.T) {
	res := New().Classify("5078031234567890", Options{Language: card.Arabic})
	assert.Equal(t, "ميزة", res.NetworkName())
	assert.Equal(t, "البنك الأهلي المصري", res.Issuer())
	assert.Equal(t, "مصر", res.Country())

	// Post-hoc language switch needs no recomputation and leaves the
	// original (possibly cached) result untouched.
	en := res.WithLanguage(card.English)
	assert.Equal(t, "Meeza", en.NetworkName())
	assert.Equal(t, "ميزة", res.NetworkName())
}

func TestLangView(t *testing.T) {
	v := New(WithLanguage(card.English))
	ar := v.Lang(card.Arabic)
	assert.Equal(t, "ميزة", ar.Classify("5078031234567890", Options{}).NetworkName())
	assert.Equal(t, "Meeza", v.Classify("5078031234567890", Options{}).NetworkName())
}

func TestCacheHitOnReformattedInput(t *testing.T) {
	obs := &countingObserver{}
	v := New(WithObserver(obs))

	first := v.Classify("4111 1111 1111 1111", Options{})
	second := v.Classify("4111-1111-1111-1111", Options{})
	assert.Equal(t, 1, obs.count())
	assert.Same(t, first, second)

	// Different extras or language miss the cache.
	v.Classify("4111111111111111", Options{IncludeTrace: true})
	assert.Equal(t, 2, obs.count())
	v.Classify("4111111111111111", Options{Language: card.Arabic})
	assert.Equal(t, 3, obs.count())

	v.ClearCache()
	v.Classify("4111111111111111", Options{})
	assert.Equal(t, 4, obs.count())
}

func TestObserverSeesMaskedPANOnly(t *testing.T) {
	obs := &countingObserver{}
	v := New(WithObserver(obs))

	v.Classify("5078031234567890", Options{})
	assert.Equal(t, "507803******7890", obs.lastMasked)
	assert.NotContains(t, obs.lastMasked, "1234567890")
	assert.Equal(t, "Meeza", obs.lastNetwork)
	assert.Equal(t, card.NoFailure, obs.lastReason)

	v.Classify("4111111111111112", Options{})
	assert.Equal(t, card.LuhnCheckFailed, obs.lastReason)
}

// faultObserver models a broken downstream hook: every classification
// callback panics. Fault reporting still works.
type faultObserver struct {
	countingObserver
}

func (o *faultObserver) OnClassification(masked string, valid bool, network string, reason card.FailureReason) {
	panic("classification hook failure")
}

func TestInternalErrorRecovery(t *testing.T) {
	obs := &faultObserver{}
	v := New(WithObserver(obs))

	res := v.Classify("4111111111111111", Options{})
	assert.False(t, res.Valid)
	assert.Equal(t, card.InternalError, res.Reason)
	assert.NotEmpty(t, res.FailureMessage())
	assert.Equal(t, "4111111111111111", res.RawInput)

	// The fault callback receives only the masked form.
	assert.Equal(t, 1, obs.faults)
	assert.Equal(t, "411111******1111", obs.lastMasked)

	// InternalError results are never cached, so the same input runs
	// the pipeline again and faults again.
	v.Classify("4111111111111111", Options{})
	assert.Equal(t, 2, obs.faults)

	// A non-numeric input cannot be masked; the callback gets nothing.
	v.Classify("bad-input", Options{})
	assert.Empty(t, obs.lastMasked)
}

// Classification is a pure function of the sanitized input and the
// static tables.
func TestClassifyDeterministic(t *testing.T) {
	a := New().Classify("5078031234567890", Options{IncludeToken: true, IncludeTrace: true})
	b := New().Classify("507803-1234-5678-90", Options{IncludeToken: true, IncludeTrace: true})
	b.RawInput = a.RawInput // raw spelling is the only allowed difference
	assert.Equal(t, a, b)
}

// Every issuer record must classify a generated number back to itself.
func TestIssuerRoundTrip(t *testing.T) {
	for _, rec := range schemes.Default().Issuers {
		n, err := luhn.GenerateTestNumber(rec.Prefix, rec.Lengths[0])
		require.NoError(t, err, rec.Prefix)

		res := New().Classify(n, Options{})
		assert.True(t, res.Valid, "prefix %s number %s", rec.Prefix, n)
		assert.Equal(t, rec.Network.EN, res.Network.EN, rec.Prefix)
		assert.Equal(t, rec.IssuerName.EN, res.IssuerName.EN, rec.Prefix)
		assert.Equal(t, rec.CVVLength, res.CVVLength, rec.Prefix)
	}
}

func TestAmexNotes(t *testing.T) {
	cd, ok := luhn.CheckDigit("37462212345678")
	require.True(t, ok)
	res := New().Classify("37462212345678"+string(cd), Options{})
	require.True(t, res.Valid)
	assert.Equal(t, "American Express", res.NetworkName())
	assert.Equal(t, 4, res.CVVLength)
	assert.Contains(t, strings.Join(res.NoteList(), "\n"), "4-digit security code")
}

func TestConcurrentClassify(t *testing.T) {
	v := New()
	pans := []string{
		"4111111111111111", "5078031234567890", "4111111111111112",
		"378282246310005", "", "123abc4567890123",
	}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			lang := card.English
			if g%2 == 1 {
				lang = card.Arabic
			}
			view := v.Lang(lang)
			for i := 0; i < 200; i++ {
				p := pans[i%len(pans)]
				res := view.Classify(p, Options{IncludeTrace: i%3 == 0})
				if p == "4111111111111111" {
					assert.True(t, res.Valid)
					assert.Equal(t, "Visa", res.Network.EN)
				}
				if i%50 == 0 {
					v.ClearCache()
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestPackageLevelDefault(t *testing.T) {
	defer ClearCache()
	res := Classify("4111111111111111", Options{})
	assert.True(t, res.Valid)

	res = ClassifyFull("4111111111111111", FullInput{CVV: "123"})
	assert.True(t, res.Valid)
	assert.Equal(t, card.Passed, res.CVVCheck)
}

func TestCustomTables(t *testing.T) {
	tbl := &schemes.Tables{
		Ranges: []schemes.NetworkRange{
			{Start: "41", End: "41", Network: schemes.NetworkVisa, Lengths: []int{16}, CVVLength: 3},
		},
	}
	require.NoError(t, tbl.Validate())

	v := New(WithTables(tbl))
	assert.Equal(t, "Visa", v.Classify("4111111111111111", Options{}).NetworkName())
	assert.Equal(t, "Unknown", v.Classify("5078031234567890", Options{}).NetworkName())
}

func TestCacheCapacityOption(t *testing.T) {
	obs := &countingObserver{}
	v := New(WithObserver(obs), WithCacheCapacity(4))
	for i := 0; i < 4; i++ {
		body := fmt.Sprintf("50780312345678%d", i)
		cd, _ := luhn.CheckDigit(body)
		v.Classify(body+string(cd), Options{})
	}
	// Re-running the same inputs hits the cache.
	before := obs.count()
	for i := 0; i < 4; i++ {
		body := fmt.Sprintf("50780312345678%d", i)
		cd, _ := luhn.CheckDigit(body)
		v.Classify(body+string(cd), Options{})
	}
	assert.Equal(t, before, obs.count())
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cardscope classifies and validates payment-card numbers: it
// determines network, issuer, card type, geography and tokenization
// eligibility from ordered prefix tables, verifies length and the
// mod-10 checksum, and optionally checks expiry, CVV and cardholder
// name. It is an embeddable, concurrency-safe library; there is no
// service and nothing is persisted beyond a bounded in-memory cache.
package cardscope

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardscope/card"
	"cardscope/format"
	"cardscope/internal/cache"
	"cardscope/luhn"
	"cardscope/schemes"
)

// tokenNamespace seeds the deterministic simulated token (UUIDv5 over
// the sanitized PAN). Fixed so the same PAN always yields the same
// token; explicitly not a real tokenization scheme.
var tokenNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Validator is the classification-and-validation pipeline. The static
// tables and checksum engine are read-only, so one Validator may be
// shared by any number of goroutines; only the result cache is mutable
// and it synchronizes internally.
type Validator struct {
	tables        *schemes.Tables
	cache         *cache.Cache
	observer      Observer
	lang          card.Language
	now           func() time.Time
	cacheCapacity int
}

// New builds a Validator over the built-in tables. Options override
// tables, observer, cache capacity, default language and clock.
func New(opts ...Option) *Validator {
	v := &Validator{
		tables:   schemes.Default(),
		observer: NopObserver{},
		lang:     card.English,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.cache = cache.New(v.cacheCapacity)
	return v
}

// Lang returns a per-caller view of the pipeline with a different
// default language. Tables, cache and observer are shared; the view is
// cheap enough to create per goroutine.
func (v *Validator) Lang(l card.Language) *Validator {
	cp := *v
	cp.lang = l
	return &cp
}

// Classify runs the fast path: sanitize, cache lookup, classification,
// length and checksum checks. Results are cached by (sanitized PAN,
// extras, language); two differently formatted spellings of the same
// PAN share an entry.
func (v *Validator) Classify(pan string, opts Options) *card.CardResult {
	lang := v.resolveLang(opts.Language)
	key := cache.Key{
		PAN:   Sanitize(pan),
		Token: opts.IncludeToken,
		Trace: opts.IncludeTrace,
		Lang:  lang.String(),
	}
	if hit := v.cache.Get(key); hit != nil {
		return hit
	}
	res := v.run(pan, opts, lang)
	if res.Reason != card.InternalError {
		v.cache.Put(key, res)
	}
	return res
}

// ClassifyFull runs the fast path plus the supplementary expiry, CVV
// and cardholder-name checks for whichever inputs were supplied. The
// parameter space is too wide to cache profitably, so this entry point
// always recomputes.
func (v *Validator) ClassifyFull(pan string, in FullInput) *card.CardResult {
	lang := v.resolveLang(in.Language)
	res := v.run(pan, in.Options, lang)
	if res.Reason == card.InternalError {
		return res
	}
	v.applySupplementary(res, in)
	return res
}

// ClearCache drops every cached result. Call after swapping tables.
func (v *Validator) ClearCache() { v.cache.Clear() }

func (v *Validator) resolveLang(l card.Language) card.Language {
	var zero card.Language
	if l == zero {
		return v.lang
	}
	return l
}

// run executes the guard chain. It never lets a fault escape: any
// panic is converted into an InternalError result and reported through
// the observer.
func (v *Validator) run(raw string, opts Options, lang card.Language) (res *card.CardResult) {
	defer func() {
		if r := recover(); r != nil {
			masked := ""
			if s := Sanitize(raw); isDigits(s) {
				masked = format.Mask(s)
			}
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			v.observer.OnInternalFault(err, masked)
			res = &card.CardResult{
				RawInput:   raw,
				Reason:     card.InternalError,
				ReasonText: card.InternalError.Message(),
				Language:   lang,
			}
		}
	}()

	res = &card.CardResult{RawInput: raw, Language: lang}
	sanitized := Sanitize(raw)

	if sanitized == "" {
		return v.fail(res, card.NullOrEmpty)
	}
	if !isDigits(sanitized) {
		res.PAN = sanitized
		return v.fail(res, card.ContainsNonDigits)
	}

	res.PAN = sanitized
	res.IsNumeric = true
	res.Length = len(sanitized)
	res.CheckDigit = sanitized[len(sanitized)-1:]
	if res.Length >= 4 {
		res.LastFour = sanitized[res.Length-4:]
	}
	if res.Length >= 6 {
		res.IIN = sanitized[:6]
	}
	if res.Length >= 8 {
		res.ExtendedIIN = sanitized[:8]
	}

	v.applyClassification(res, v.tables.Match(sanitized))

	res.LengthValid = containsInt(res.ValidLengths, res.Length)
	if !res.LengthValid {
		v.fail(res, card.InvalidLength)
		res.ReasonText = lengthMessage(res.ValidLengths)
		return res
	}

	if opts.IncludeTrace {
		res.Trace = luhn.Steps(sanitized)
	}
	res.LuhnValid = luhn.IsValid(sanitized)
	if !res.LuhnValid {
		return v.fail(res, card.LuhnCheckFailed)
	}

	res.Valid = true
	res.Formatted = format.PAN(sanitized)
	res.Masked = format.Mask(sanitized)
	if opts.IncludeToken && res.SupportsTokenization {
		res.SimulatedToken = simulatedToken(sanitized)
	}
	v.attachNotes(res)

	v.observer.OnClassification(res.Masked, true, res.NetworkName(), card.NoFailure)
	return res
}

// applyClassification copies the classifier's output onto the result.
// Issuer metadata comes along only when an issuer record matched.
func (v *Validator) applyClassification(res *card.CardResult, cls schemes.Classification) {
	res.Network = cls.Network
	res.ValidLengths = cls.Lengths
	res.CVVLength = cls.CVVLength
	res.SupportsTokenization = cls.Tokenizable
	if cls.Issuer == nil {
		return
	}
	rec := cls.Issuer
	res.CardType = rec.CardType
	res.Category = rec.Category
	res.IssuerName = rec.IssuerName
	res.CountryCode = rec.CountryCode
	res.CountryName = rec.CountryName
	res.Currency = rec.Currency
	res.Region = rec.Region
	res.Domestic = rec.Domestic
	res.IssuerWebsite = rec.Website
	res.IssuerPhone = rec.Phone
}

// fail marks the terminal failure state and reports it.
func (v *Validator) fail(res *card.CardResult, reason card.FailureReason) *card.CardResult {
	res.Valid = false
	res.Reason = reason
	res.ReasonText = reason.Message()
	masked := ""
	if res.IsNumeric {
		masked = format.Mask(res.PAN)
	}
	v.observer.OnClassification(masked, false, res.NetworkName(), reason)
	return res
}

// attachNotes adds the contextual notices for valid results.
func (v *Validator) attachNotes(res *card.CardResult) {
	if res.Domestic {
		res.AddNote(
			"Domestic network card, accepted for payments inside Egypt only",
			"بطاقة شبكة محلية، تُقبل للدفع داخل مصر فقط",
		)
	}
	if res.SupportsTokenization {
		res.AddNote(
			"Eligible for tokenized payments such as digital wallets",
			"مؤهلة للمدفوعات الرمزية مثل المحافظ الرقمية",
		)
	}
	if res.CardType.EN == schemes.TypePrepaid.EN {
		res.AddNote(
			"Prepaid card: spending is limited to the loaded balance",
			"بطاقة مسبقة الدفع: الإنفاق مقيد بالرصيد المشحون",
		)
	}
	if res.CVVLength == 4 {
		res.AddNote(
			"This network prints a 4-digit security code on the front",
			"هذه الشبكة تستخدم رمز أمان مكونًا من 4 أرقام على الوجه الأمامي",
		)
	}
}

// simulatedToken derives a stable surrogate for a PAN: a v5 UUID in a
// fixed namespace. Deterministic by design so repeated calls agree.
func simulatedToken(pan string) string {
	return "tok-" + uuid.NewSHA1(tokenNamespace, []byte(pan)).String()
}

// lengthMessage builds the InvalidLength description including the
// expected set.
func lengthMessage(lengths []int) card.Text {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = fmt.Sprintf("%d", l)
	}
	set := strings.Join(parts, ", ")
	return card.T(
		fmt.Sprintf("Card number length is invalid; expected one of: %s", set),
		fmt.Sprintf("طول رقم البطاقة غير صحيح؛ الأطوال المقبولة: %s", set),
	)
}

func containsInt(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

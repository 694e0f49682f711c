// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"en-US", English},
		{"ar", Arabic},
		{"ar-EG", Arabic},
		{"", English},
		{"fr", English}, // unsupported falls back
		{"nonsense tag", English},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseLanguage(c.in), c.in)
	}
}

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "en", English.String())
	assert.Equal(t, "ar", Arabic.String())
	assert.Equal(t, "en", Language{}.String()) // zero value reads as English
}

func TestLanguageJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Arabic)
	assert.NoError(t, err)
	assert.Equal(t, `"ar"`, string(b))

	var l Language
	assert.NoError(t, json.Unmarshal([]byte(`"ar-EG"`), &l))
	assert.Equal(t, Arabic, l)
	assert.NoError(t, json.Unmarshal([]byte(`"fr"`), &l))
	assert.Equal(t, English, l)
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestTextPairAlwaysWhole(t *testing.T) {
	full := T("Visa", "فيزا")
	assert.Equal(t, "Visa", full.In(English))
	assert.Equal(t, "فيزا", full.In(Arabic))

	// A missing side is filled from the other at construction.
	enOnly := T("Visa", "")
	assert.Equal(t, "Visa", enOnly.AR)
	arOnly := T("", "فيزا")
	assert.Equal(t, "فيزا", arOnly.EN)

	assert.True(t, T("", "").IsZero())
	assert.False(t, full.IsZero())
}

func TestResultAccessorsFollowLanguage(t *testing.T) {
	res := &CardResult{
		Network:    T("Meeza", "ميزة"),
		IssuerName: T("National Bank of Egypt", "البنك الأهلي المصري"),
		Language:   English,
	}
	res.AddNote("English note", "ملاحظة عربية")

	assert.Equal(t, "Meeza", res.NetworkName())
	assert.Equal(t, []string{"English note"}, res.NoteList())

	ar := res.WithLanguage(Arabic)
	assert.Equal(t, "ميزة", ar.NetworkName())
	assert.Equal(t, "البنك الأهلي المصري", ar.Issuer())
	assert.Equal(t, []string{"ملاحظة عربية"}, ar.NoteList())

	// The original is untouched; WithLanguage copies.
	assert.Equal(t, English, res.Language)
	assert.Equal(t, "Meeza", res.NetworkName())
}

func TestNoteListEmpty(t *testing.T) {
	res := &CardResult{}
	assert.Nil(t, res.NoteList())
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "luhn_check_failed", LuhnCheckFailed.String())
	assert.Equal(t, "none", NoFailure.String())
	assert.Equal(t, "unknown", FailureReason(99).String())

	msg := CardExpired.Message()
	assert.Equal(t, "Card has expired", msg.EN)
	assert.NotEmpty(t, msg.AR)
	assert.True(t, NoFailure.Message().IsZero())
}

func TestCheckOutcome(t *testing.T) {
	assert.Equal(t, "not_evaluated", NotEvaluated.String())
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "failed", Failed.String())
	assert.False(t, NotEvaluated.Evaluated())
	assert.True(t, Failed.Evaluated())
}

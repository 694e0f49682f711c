// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

// Text is a bilingual string pair. Both sides are always populated
// together so the active language can be switched after classification
// without recomputation.
type Text struct {
	EN string `json:"en" yaml:"en"`
	AR string `json:"ar" yaml:"ar"`
}

// T builds a Text pair. An empty Arabic side falls back to the English
// value so a half-filled pair can never be constructed.
func T(en, ar string) Text {
	if ar == "" {
		ar = en
	}
	if en == "" {
		en = ar
	}
	return Text{EN: en, AR: ar}
}

// In resolves the pair to the requested language.
func (t Text) In(l Language) string {
	if l.IsArabic() {
		return t.AR
	}
	return t.EN
}

// IsZero reports whether both sides are empty.
func (t Text) IsZero() bool { return t.EN == "" && t.AR == "" }

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package card defines the bilingual classification result model.
package card

import (
	"encoding/json"

	"golang.org/x/text/language"
)

// Language selects which side of a bilingual field pair the computed
// accessors resolve to. The underlying values are BCP 47 tags.
type Language struct {
	tag language.Tag
}

var (
	// English is the default result language.
	English = Language{language.English}
	// Arabic resolves accessors to the Arabic side of each field pair.
	Arabic = Language{language.Arabic}
)

var supported = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
})

// ParseLanguage maps a BCP 47 string ("en", "ar", "ar-EG", ...) onto one
// of the two supported languages, falling back to English.
func ParseLanguage(s string) Language {
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, idx, _ := supported.Match(tag)
	if idx == 1 {
		return Arabic
	}
	return English
}

// Tag returns the underlying BCP 47 tag.
func (l Language) Tag() language.Tag { return l.tag }

// IsArabic reports whether the Arabic payload is the active one.
func (l Language) IsArabic() bool { return l.tag == language.Arabic }

func (l Language) String() string {
	if l.IsArabic() {
		return "ar"
	}
	return "en"
}

// MarshalJSON encodes the language as its BCP 47 string.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a BCP 47 string, mapping anything unsupported
// onto English.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseLanguage(s)
	return nil
}

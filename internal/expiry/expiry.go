// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package expiry parses card expiry strings and decides expiration.
// A card stays valid through the last calendar day of its expiry month;
// comparison is against the current UTC year and month only.
package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a parsed expiry month.
type Date struct {
	Month int // 1..12
	Year  int // 2000..2099
}

// Parse accepts MMYY or MMYYYY, with '/', '-' and spaces tolerated and
// stripped first ("01/27", "01-2027", "0127" are all the same date).
func Parse(in string) (Date, error) {
	s := strings.TrimSpace(in)
	s = strings.NewReplacer("/", "", "-", "", " ", "").Replace(s)
	if len(s) != 4 && len(s) != 6 {
		return Date{}, fmt.Errorf("expiry must be MMYY or MMYYYY, got %q", in)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Date{}, fmt.Errorf("expiry must be digits, got %q", in)
		}
	}
	mm, _ := strconv.Atoi(s[:2])
	if mm < 1 || mm > 12 {
		return Date{}, fmt.Errorf("expiry month must be 01..12, got %02d", mm)
	}
	var year int
	if len(s) == 4 {
		yy, _ := strconv.Atoi(s[2:])
		year = 2000 + yy
	} else {
		year, _ = strconv.Atoi(s[2:])
	}
	if year < 2000 || year > 2099 {
		return Date{}, fmt.Errorf("expiry year must be 2000..2099, got %d", year)
	}
	return Date{Month: mm, Year: year}, nil
}

// Expired reports whether the date has passed relative to now, at
// year/month granularity in UTC. The expiry month itself still counts
// as valid.
func (d Date) Expired(now time.Time) bool {
	now = now.UTC()
	if now.Year() != d.Year {
		return now.Year() > d.Year
	}
	return int(now.Month()) > d.Month
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%04d", d.Month, d.Year)
}

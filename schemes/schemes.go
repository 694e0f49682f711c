// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package schemes holds the static prefix tables and the ordered
// first-match classifier over them: an issuer list keyed by a 6-digit
// prefix, and a global network-range list used as fallback.
package schemes

import (
	"strconv"
	"strings"

	"cardscope/card"
)

// Display names shared by tables and classifier output.
var (
	NetworkVisa       = card.T("Visa", "فيزا")
	NetworkMastercard = card.T("Mastercard", "ماستركارد")
	NetworkAmex       = card.T("American Express", "أمريكان إكسبريس")
	NetworkDiscover   = card.T("Discover", "ديسكفر")
	NetworkJCB        = card.T("JCB", "جي سي بي")
	NetworkDiners     = card.T("Diners Club", "داينرز كلوب")
	NetworkUnionPay   = card.T("UnionPay", "يونيون باي")
	NetworkMaestro    = card.T("Maestro", "مايسترو")
	NetworkMeeza      = card.T("Meeza", "ميزة")
	NetworkMir        = card.T("Mir", "مير")
	NetworkUnknown    = card.T("Unknown", "غير معروف")

	TypeDebit   = card.T("Debit", "خصم مباشر")
	TypeCredit  = card.T("Credit", "ائتمانية")
	TypePrepaid = card.T("Prepaid", "مسبقة الدفع")

	CategoryStandard  = card.T("Standard", "قياسية")
	CategoryClassic   = card.T("Classic", "كلاسيك")
	CategoryGold      = card.T("Gold", "ذهبية")
	CategoryPlatinum  = card.T("Platinum", "بلاتينية")
	CategoryTitanium  = card.T("Titanium", "تيتانيوم")
	CategorySignature = card.T("Signature", "سيجنتشر")
	CategoryWorld     = card.T("World", "وورلد")
	CategoryInfinite  = card.T("Infinite", "إنفينيت")
	CategoryBusiness  = card.T("Business", "أعمال")
)

// IssuerRecord describes one issuer BIN. Static configuration data,
// never mutated after load. Prefix is exactly six ASCII digits and is
// unique within a table.
type IssuerRecord struct {
	Prefix      string    `yaml:"prefix"`
	Network     card.Text `yaml:"network"`
	CardType    card.Text `yaml:"card_type"`
	Category    card.Text `yaml:"category"`
	IssuerName  card.Text `yaml:"issuer_name"`
	CountryCode string    `yaml:"country_code"`
	CountryName card.Text `yaml:"country_name"`
	Currency    string    `yaml:"currency"`
	Region      card.Text `yaml:"region"`
	Domestic    bool      `yaml:"domestic"`
	Tokenizable bool      `yaml:"tokenizable"`
	CVVLength   int       `yaml:"cvv_length"`
	Lengths     []int     `yaml:"lengths"`
	Website     string    `yaml:"website,omitempty"`
	Phone       string    `yaml:"phone,omitempty"`
}

// NetworkRange describes a global network prefix interval. End markers
// of a different digit-length than Start are normalized before the
// numeric comparison: longer ends are truncated, shorter ends are
// right-padded with '9'.
type NetworkRange struct {
	Start     string    `yaml:"start"`
	End       string    `yaml:"end"`
	Network   card.Text `yaml:"network"`
	Lengths   []int     `yaml:"lengths"`
	CVVLength int       `yaml:"cvv_length"`
}

// Tables bundles both prefix lists. Order matters: matching is first
// match wins in list order, so narrower entries must precede broader
// ones that contain them.
type Tables struct {
	Issuers []IssuerRecord `yaml:"issuers"`
	Ranges  []NetworkRange `yaml:"ranges"`
}

// Classification is the classifier's output. Issuer is nil when only a
// network range (or nothing) matched.
type Classification struct {
	Issuer      *IssuerRecord
	Network     card.Text
	Lengths     []int
	CVVLength   int
	Tokenizable bool
	Known       bool // false for the Unknown-network fallback
}

// genericLengths is the accepted-length set of the Unknown fallback.
var genericLengths = []int{13, 14, 15, 16, 17, 18, 19}

// Networks whose range matches report tokenization support even without
// an issuer record; the scheme operators support it universally.
var tokenizableNetworks = map[string]bool{
	NetworkVisa.EN:       true,
	NetworkMastercard.EN: true,
	NetworkAmex.EN:       true,
	NetworkDiscover.EN:   true,
}

// Match classifies a sanitized all-digit PAN against the tables.
// Issuer records are scanned first in table order, then the network
// ranges; the first hit wins.
func (t *Tables) Match(pan string) Classification {
	for i := range t.Issuers {
		rec := &t.Issuers[i]
		if strings.HasPrefix(pan, rec.Prefix) {
			return Classification{
				Issuer:      rec,
				Network:     rec.Network,
				Lengths:     rec.Lengths,
				CVVLength:   rec.CVVLength,
				Tokenizable: rec.Tokenizable,
				Known:       true,
			}
		}
	}
	for i := range t.Ranges {
		r := &t.Ranges[i]
		if r.contains(pan) {
			return Classification{
				Network:     r.Network,
				Lengths:     r.Lengths,
				CVVLength:   r.CVVLength,
				Tokenizable: tokenizableNetworks[r.Network.EN],
				Known:       true,
			}
		}
	}
	return Classification{
		Network:   NetworkUnknown,
		Lengths:   genericLengths,
		CVVLength: 3,
	}
}

// contains reports whether the PAN's leading digits fall inside the
// range, comparing numerically at the start marker's digit-length.
func (r *NetworkRange) contains(pan string) bool {
	n := len(r.Start)
	if len(pan) < n {
		return false
	}
	head, err := strconv.ParseUint(pan[:n], 10, 64)
	if err != nil {
		return false
	}
	lo, err := strconv.ParseUint(r.Start, 10, 64)
	if err != nil {
		return false
	}
	hi, err := strconv.ParseUint(normalizeEnd(r.End, n), 10, 64)
	if err != nil {
		return false
	}
	return head >= lo && head <= hi
}

// normalizeEnd reshapes an end marker to width digits: truncate when
// longer, right-pad with '9' when shorter.
func normalizeEnd(end string, width int) string {
	if len(end) > width {
		return end[:width]
	}
	if len(end) < width {
		return end + strings.Repeat("9", width-len(end))
	}
	return end
}

// Default returns the built-in tables: the Egyptian issuer list plus
// the global network ranges. The returned value is shared and must be
// treated as read-only.
func Default() *Tables {
	return defaultTables
}

var defaultTables = &Tables{
	Issuers: egyptIssuers,
	Ranges:  globalRanges,
}

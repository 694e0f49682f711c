// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

// FailureReason identifies why validation stopped. Failures are normal
// return values on the result, never panics or errors.
type FailureReason int

const (
	// NoFailure is the zero value of a valid result.
	NoFailure FailureReason = iota
	// NullOrEmpty: the input was absent or empty after sanitization.
	NullOrEmpty
	// ContainsNonDigits: the sanitized input still held non-digit bytes.
	ContainsNonDigits
	// InvalidLength: length outside the classified valid-length set.
	InvalidLength
	// LuhnCheckFailed: the mod-10 checksum did not verify.
	LuhnCheckFailed
	// UnknownIIN is reserved; unknown prefixes currently classify as the
	// Unknown network instead of failing hard.
	UnknownIIN
	// InvalidExpiryDate: the expiry string could not be parsed.
	InvalidExpiryDate
	// CardExpired: the expiry month has passed.
	CardExpired
	// InvalidCVV: CVV shape or length mismatch for the network.
	InvalidCVV
	// InvalidCardholderName: name outside the accepted shape.
	InvalidCardholderName
	// InternalError: an unexpected fault was caught at the pipeline
	// boundary and converted into a failure result.
	InternalError
)

var reasonNames = map[FailureReason]string{
	NoFailure:             "none",
	NullOrEmpty:           "null_or_empty",
	ContainsNonDigits:     "contains_non_digits",
	InvalidLength:         "invalid_length",
	LuhnCheckFailed:       "luhn_check_failed",
	UnknownIIN:            "unknown_iin",
	InvalidExpiryDate:     "invalid_expiry_date",
	CardExpired:           "card_expired",
	InvalidCVV:            "invalid_cvv",
	InvalidCardholderName: "invalid_cardholder_name",
	InternalError:         "internal_error",
}

func (r FailureReason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

var reasonMessages = map[FailureReason]Text{
	NullOrEmpty:           T("Card number is missing or empty", "رقم البطاقة مفقود أو فارغ"),
	ContainsNonDigits:     T("Card number contains non-numeric characters", "رقم البطاقة يحتوي على رموز غير رقمية"),
	InvalidLength:         T("Card number length is invalid", "طول رقم البطاقة غير صحيح"),
	LuhnCheckFailed:       T("Card number failed the checksum test", "رقم البطاقة لم يجتز اختبار التحقق"),
	UnknownIIN:            T("Card prefix is not recognized", "بادئة البطاقة غير معروفة"),
	InvalidExpiryDate:     T("Expiry date format is invalid", "صيغة تاريخ الانتهاء غير صحيحة"),
	CardExpired:           T("Card has expired", "البطاقة منتهية الصلاحية"),
	InvalidCVV:            T("Security code (CVV) is invalid", "رمز الأمان غير صحيح"),
	InvalidCardholderName: T("Cardholder name is invalid", "اسم حامل البطاقة غير صحيح"),
	InternalError:         T("An internal error occurred during validation", "حدث خطأ داخلي أثناء التحقق"),
}

// Message returns the bilingual, human-readable description of the reason.
func (r FailureReason) Message() Text {
	if t, ok := reasonMessages[r]; ok {
		return t
	}
	return Text{}
}

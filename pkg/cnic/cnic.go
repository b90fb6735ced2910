// Package cnic validates and normalizes Pakistan CNIC (Computerized National
// Identity Card) numbers.
//
// A CNIC is written either dashed, 12345-1234567-1, or as 13 contiguous digits,
// 1234512345671. Every function trims surrounding whitespace before looking at
// its input and none of them panic or return errors for malformed input: the
// boolean checks return false and the formatters report absence through a
// second ok result.
//
// Domain Purity: no I/O, no shared mutable state. All functions are safe for
// concurrent use.
package cnic

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// Length is the number of digits in a canonical CNIC.
	Length = 13
	// DashedLength is the number of characters in the dashed form.
	DashedLength = 15
)

var (
	dashedPattern   = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)
	undashedPattern = regexp.MustCompile(`^\d{13}$`)
)

// cutset is the whitespace stripped from both ends of every input.
const cutset = " \t\n\r\x00\x0B"

// Trim strips the surrounding whitespace every function in this package
// ignores: space, tab, newline, carriage return, NUL and vertical tab.
func Trim(raw string) string {
	return strings.Trim(raw, cutset)
}

// IsValid reports whether raw is a valid CNIC in either the dashed or the
// undashed form.
func IsValid(raw string) bool {
	s := Trim(raw)
	if s == "" {
		return false
	}
	return IsValidWithDashes(s) || IsValidWithoutDashes(s)
}

// IsValidWithDashes reports whether raw is a valid CNIC written as
// DDDDD-DDDDDDD-D.
func IsValidWithDashes(raw string) bool {
	s := Trim(raw)
	if !dashedPattern.MatchString(s) {
		return false
	}
	return checkFields(stripDashes(s)) == ""
}

// IsValidWithoutDashes reports whether raw is a valid CNIC written as 13
// contiguous digits.
func IsValidWithoutDashes(raw string) bool {
	s := Trim(raw)
	if !undashedPattern.MatchString(s) {
		return false
	}
	return checkFields(s) == ""
}

// FormatWithDashes returns raw in the dashed form. Input that is already dashed
// is returned trimmed but otherwise unchanged. ok is false if raw is not a
// valid CNIC.
func FormatWithDashes(raw string) (string, bool) {
	s := Trim(raw)
	if IsValidWithDashes(s) {
		return s, true
	}
	if IsValidWithoutDashes(s) {
		return addDashes(s), true
	}
	return "", false
}

// FormatWithoutDashes returns raw as 13 contiguous digits. ok is false if raw
// is not a valid CNIC.
func FormatWithoutDashes(raw string) (string, bool) {
	s := Trim(raw)
	if IsValidWithoutDashes(s) {
		return s, true
	}
	if IsValidWithDashes(s) {
		return stripDashes(s), true
	}
	return "", false
}

// Info is the field decomposition of a valid CNIC. All fields are fixed-width
// zero-padded decimal text.
type Info struct {
	// Identifier echoes the trimmed input in whichever form the caller used.
	Identifier              string `json:"identifier"`
	IdentifierWithDashes    string `json:"identifier_with_dashes"`
	IdentifierWithoutDashes string `json:"identifier_without_dashes"`
	ProvinceCode            string `json:"province_code"`
	DistrictCode            string `json:"district_code"`
	FamilyNumber            string `json:"family_number"`
	SerialNumber            string `json:"serial_number"`
	// CheckDigit is extracted as written. It is not verified against any
	// checksum.
	CheckDigit string `json:"check_digit"`
}

// ExtractInfo decomposes raw into its fields. ok is false if raw is not a
// valid CNIC. Dashed and undashed spellings of the same CNIC yield identical
// Info apart from Identifier.
func ExtractInfo(raw string) (Info, bool) {
	s := Trim(raw)
	if !IsValid(s) {
		return Info{}, false
	}
	info := decompose(stripDashes(s))
	info.Identifier = s
	return info, true
}

func decompose(digits string) Info {
	return Info{
		IdentifierWithDashes:    addDashes(digits),
		IdentifierWithoutDashes: digits,
		ProvinceCode:            digits[0:1],
		DistrictCode:            digits[0:2],
		FamilyNumber:            digits[2:5],
		SerialNumber:            digits[5:12],
		CheckDigit:              digits[12:13],
	}
}

// field is one range-checked slice of the canonical digits.
type field struct {
	name     string
	off, len int
	min, max int
}

// fields are checked in order; the first failure names the rejection reason.
var fields = []field{
	{name: ReasonProvinceCode, off: 0, len: 1, min: 1, max: 9},
	{name: ReasonDistrictCode, off: 0, len: 2, min: 11, max: 99},
	{name: ReasonFamilyNumber, off: 2, len: 3, min: 1, max: 999},
	{name: ReasonSerialNumber, off: 5, len: 7, min: 1, max: 9999999},
	{name: ReasonCheckDigit, off: 12, len: 1, min: 0, max: 9},
}

// checkFields applies the numeric range rules to a 13 digit string and returns
// the reason of the first failing rule, or "" when every rule passes.
func checkFields(digits string) string {
	if len(digits) != Length || !allDigits(digits) {
		return ReasonFormat
	}
	for _, f := range fields {
		n, err := strconv.Atoi(digits[f.off : f.off+f.len])
		if err != nil || n < f.min || n > f.max {
			return f.name
		}
	}
	return ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func stripDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

func addDashes(digits string) string {
	return digits[0:5] + "-" + digits[5:12] + "-" + digits[12:13]
}

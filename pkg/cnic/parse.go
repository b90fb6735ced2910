package cnic

import (
	"errors"
	"strings"

	dErrors "pkcnic/pkg/domain-errors"
)

// Rejection reasons reported by Parse and Reason. They are stable and safe to
// use as metric labels.
const (
	ReasonEmpty        = "empty"
	ReasonFormat       = "format"
	ReasonProvinceCode = "province code"
	ReasonDistrictCode = "district code"
	ReasonFamilyNumber = "family number"
	ReasonSerialNumber = "serial number"
	ReasonCheckDigit   = "check digit"
)

// Format names one of the two textual representations of a CNIC.
type Format int

const (
	FormatUnknown Format = iota
	FormatDashed
	FormatUndashed
)

func (f Format) String() string {
	switch f {
	case FormatDashed:
		return "dashed"
	case FormatUndashed:
		return "undashed"
	default:
		return "unknown"
	}
}

// ParseFormat parses "dashed" or "undashed" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dashed":
		return FormatDashed, nil
	case "undashed":
		return FormatUndashed, nil
	default:
		return FormatUnknown, dErrors.New(dErrors.CodeValidation, "format must be one of: dashed, undashed")
	}
}

// Detect reports which form a valid CNIC is written in. ok is false if raw is
// not a valid CNIC.
func Detect(raw string) (Format, bool) {
	switch {
	case IsValidWithDashes(raw):
		return FormatDashed, true
	case IsValidWithoutDashes(raw):
		return FormatUndashed, true
	default:
		return FormatUnknown, false
	}
}

// FormatAs renders raw in the requested form. ok is false if raw is not a
// valid CNIC or f is FormatUnknown.
func FormatAs(raw string, f Format) (string, bool) {
	switch f {
	case FormatDashed:
		return FormatWithDashes(raw)
	case FormatUndashed:
		return FormatWithoutDashes(raw)
	default:
		return "", false
	}
}

// CNIC is a validated CNIC held in canonical 13 digit form.
//
// Invariants:
//   - Exactly 13 ASCII digits
//   - Every field within its numeric range
type CNIC struct {
	value string
}

// reasonError carries the rejection reason alongside the domain error so
// callers can label metrics without parsing messages.
type reasonError struct {
	reason string
}

func (e *reasonError) Error() string {
	return e.reason
}

func invalid(reason string) error {
	return dErrors.Wrap(&reasonError{reason: reason}, dErrors.CodeInvalidInput, "invalid CNIC")
}

// Parse validates raw and returns it as a CNIC. The returned error carries
// dErrors.CodeInvalidInput and names the first rule the input broke; see
// Reason.
func Parse(raw string) (CNIC, error) {
	s := Trim(raw)
	if s == "" {
		return CNIC{}, invalid(ReasonEmpty)
	}
	var digits string
	switch {
	case dashedPattern.MatchString(s):
		digits = stripDashes(s)
	case undashedPattern.MatchString(s):
		digits = s
	default:
		return CNIC{}, invalid(ReasonFormat)
	}
	if reason := checkFields(digits); reason != "" {
		return CNIC{}, invalid(reason)
	}
	return CNIC{value: digits}, nil
}

// MustParse is like Parse but panics on invalid input.
// Use only in tests or for values known to be valid.
func MustParse(raw string) CNIC {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Reason returns the rejection reason carried by an error from Parse, or ""
// if err did not come from Parse.
func Reason(err error) string {
	var re *reasonError
	if errors.As(err, &re) {
		return re.reason
	}
	return ""
}

// String returns the canonical 13 digit form.
func (c CNIC) String() string {
	return c.value
}

// Dashed returns the DDDDD-DDDDDDD-D form.
func (c CNIC) Dashed() string {
	if c.IsZero() {
		return ""
	}
	return addDashes(c.value)
}

// Info returns the field decomposition with Identifier set to the canonical
// form.
func (c CNIC) Info() Info {
	if c.IsZero() {
		return Info{}
	}
	info := decompose(c.value)
	info.Identifier = c.value
	return info
}

// IsZero returns true if this is the zero value (uninitialized).
func (c CNIC) IsZero() bool {
	return c.value == ""
}

//go:build go1.18

package cnic

import (
	"testing"
)

// FuzzParse checks that parsing never panics and that Parse and IsValid agree.
// Accepted input must round-trip through both surface forms.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("12345-1234567-1")
	f.Add("1234512345671")
	f.Add("  99999-9999999-9\n")
	f.Add("02345-1234567-1")
	f.Add("12345-0000000-1")
	f.Add("invalid-cnic-123")
	f.Add("12345-1234567-1\x00suffix")
	f.Add(string([]byte{0xff, 0xfe, 0x2d}))

	f.Fuzz(func(t *testing.T, input string) {
		c, err := Parse(input)

		if (err == nil) != IsValid(input) {
			t.Fatalf("Parse and IsValid disagree on %q: err=%v", input, err)
		}
		if err != nil {
			if Reason(err) == "" {
				t.Errorf("rejection of %q carries no reason", input)
			}
			return
		}

		again, err := Parse(c.Dashed())
		if err != nil || again != c {
			t.Errorf("dashed round-trip failed for %q", input)
		}
		again, err = Parse(c.String())
		if err != nil || again != c {
			t.Errorf("undashed round-trip failed for %q", input)
		}
	})
}

// FuzzFormatters checks the formatters agree with the validators.
func FuzzFormatters(f *testing.F) {
	f.Add("12345-1234567-1")
	f.Add("1234512345671")
	f.Add("abc")

	f.Fuzz(func(t *testing.T, input string) {
		dashed, okD := FormatWithDashes(input)
		undashed, okU := FormatWithoutDashes(input)
		info, okI := ExtractInfo(input)

		valid := IsValid(input)
		if okD != valid || okU != valid || okI != valid {
			t.Fatalf("formatters disagree with IsValid on %q", input)
		}
		if !valid {
			return
		}
		if len(dashed) != DashedLength || len(undashed) != Length {
			t.Errorf("unexpected lengths %q %q", dashed, undashed)
		}
		if info.IdentifierWithDashes != dashed || info.IdentifierWithoutDashes != undashed {
			t.Errorf("info mismatch for %q", input)
		}
	})
}

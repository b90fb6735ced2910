package cnic_test

import (
	"fmt"

	"pkcnic/pkg/cnic"
)

func ExampleIsValid() {
	fmt.Println(cnic.IsValid("12345-1234567-1"))
	fmt.Println(cnic.IsValid("1234512345671"))
	fmt.Println(cnic.IsValid("  12345-1234567-1  "))
	fmt.Println(cnic.IsValid("invalid-cnic-123"))
	// Output:
	// true
	// true
	// true
	// false
}

func ExampleFormatWithDashes() {
	s, ok := cnic.FormatWithDashes("1234512345671")
	fmt.Println(s, ok)
	_, ok = cnic.FormatWithDashes("invalid-cnic-123")
	fmt.Println(ok)
	// Output:
	// 12345-1234567-1 true
	// false
}

func ExampleFormatWithoutDashes() {
	s, ok := cnic.FormatWithoutDashes("12345-1234567-1")
	fmt.Println(s, ok)
	// Output: 1234512345671 true
}

func ExampleExtractInfo() {
	info, ok := cnic.ExtractInfo("12345-1234567-1")
	if !ok {
		return
	}
	fmt.Println("Province Code:", info.ProvinceCode)
	fmt.Println("District Code:", info.DistrictCode)
	fmt.Println("Family Number:", info.FamilyNumber)
	fmt.Println("Serial Number:", info.SerialNumber)
	fmt.Println("Check Digit:", info.CheckDigit)
	// Output:
	// Province Code: 1
	// District Code: 12
	// Family Number: 345
	// Serial Number: 1234567
	// Check Digit: 1
}

func ExampleParse() {
	_, err := cnic.Parse("12000-1234567-1")
	fmt.Println(err)
	fmt.Println(cnic.Reason(err))
	// Output:
	// invalid CNIC: family number
	// family number
}

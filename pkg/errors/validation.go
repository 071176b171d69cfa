package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxAtomicNumber is the largest atomic number accepted anywhere.
// Larger values cannot be represented exactly as a float64.
const MaxAtomicNumber = 1<<53 - 1

// symbolRegex matches chemical symbols: one capital letter followed by up to
// two lowercase letters ("H", "Fe", "Uue").
var symbolRegex = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)

// ValidateSymbol validates a chemical symbol.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return New(ErrCodeInvalidSymbol, "symbol cannot be empty")
	}
	if !symbolRegex.MatchString(symbol) {
		return New(ErrCodeInvalidSymbol, "invalid symbol %q (want a capital letter and up to two lowercase letters)", symbol)
	}
	return nil
}

// ValidateName validates an element name.
//
// Validation rules:
//   - Name cannot be empty or blank
//   - Maximum length of 64 characters
//   - No control characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	const maxNameLength = 64
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}
	return nil
}

// ValidateAtomicNumber checks that n is a usable atomic number.
func ValidateAtomicNumber(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidNumber, "atomic number must be positive, got %d", n)
	}
	if n > MaxAtomicNumber {
		return New(ErrCodeInvalidNumber, "atomic number %d exceeds %d", n, MaxAtomicNumber)
	}
	return nil
}

// ValidateElementKey validates a lookup key given on the command line: an
// atomic number or a symbol.
func ValidateElementKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return New(ErrCodeInvalidInput, "element cannot be empty")
	}
	if len(key) > 32 {
		return New(ErrCodeInvalidInput, "element key too long (max 32 characters)")
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element key contains invalid control characters")
		}
	}
	return nil
}

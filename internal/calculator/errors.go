package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrUnsupportedCountry is matched by every UnsupportedCountryError.
	ErrUnsupportedCountry = errors.New("unsupported country")

	// ErrInvalidInput is matched by every InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
)

// UnsupportedCountryError reports a country code outside NA, ZA, BW and ZM.
type UnsupportedCountryError struct {
	Country string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("unsupported country %q: supported countries are NA, ZA, BW, ZM", e.Country)
}

// Is lets errors.Is match ErrUnsupportedCountry.
func (e *UnsupportedCountryError) Is(target error) bool {
	return target == ErrUnsupportedCountry
}

// InvalidInputError reports an input field that failed validation.
type InvalidInputError struct {
	// Field is the JSON name of the offending field, e.g. "cif" or "zm.cc".
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Package money represents fun-coin amounts as exact integer minor units.
//
// One fun-coin (FC) is 100 minor units. Every amount that reaches storage is an
// Amount in the range [0, Max]; values outside it are rejected at the edge.
package money

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a number of fun-coin minor units.
type Amount int64

// Max is 9 billion FC expressed in minor units.
const Max Amount = 900_000_000_000

const minorPerMajor = 100

var (
	ErrInvalidAmount = errors.New("invalid fun-coin amount")
	ErrOverflow      = errors.New("fun-coin overflow")
	ErrUnderflow     = errors.New("fun-coin underflow")
)

var (
	amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	maxDecimal    = decimal.NewFromInt(int64(Max))
	printer       = message.NewPrinter(language.English)
)

// Parse converts a decimal FC string ("12", "12.5", "12.50") into minor units.
func Parse(s string) (Amount, error) {
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	minor := d.Shift(2)
	if minor.GreaterThan(maxDecimal) {
		return 0, fmt.Errorf("%w: %q exceeds maximum", ErrInvalidAmount, s)
	}
	return Amount(minor.IntPart()), nil
}

// ParseMinor accepts an amount that is already expressed in minor units.
func ParseMinor(v int64) (Amount, error) {
	a := Amount(v)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d minor units", ErrInvalidAmount, v)
	}
	return a, nil
}

// Valid reports whether a is inside [0, Max].
func (a Amount) Valid() bool {
	return a >= 0 && a <= Max
}

// String renders the canonical plain decimal form, e.g. "1234.56".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/minorPerMajor, v%minorPerMajor)
}

// Decimal returns a as a major-unit decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Format renders a for display: "FC 1,234.56".
func Format(a Amount) string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("FC %s%s.%02d", sign, printer.Sprintf("%d", v/minorPerMajor), v%minorPerMajor)
}

// Add returns a+b, failing with ErrOverflow past Max.
func Add(a, b Amount) (Amount, error) {
	if !a.Valid() || !b.Valid() {
		return 0, ErrInvalidAmount
	}
	sum := a + b
	if sum > Max {
		return 0, fmt.Errorf("%w: %s + %s", ErrOverflow, a, b)
	}
	return sum, nil
}

// Sub returns a-b, failing with ErrUnderflow below zero.
func Sub(a, b Amount) (Amount, error) {
	if !a.Valid() || !b.Valid() {
		return 0, ErrInvalidAmount
	}
	if b > a {
		return 0, fmt.Errorf("%w: %s - %s", ErrUnderflow, a, b)
	}
	return a - b, nil
}

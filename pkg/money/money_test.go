package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Amount
		expectErr bool
	}{
		{name: "Zero", input: "0", expected: 0},
		{name: "One cent", input: "0.01", expected: 1},
		{name: "Whole number", input: "10", expected: 1000},
		{name: "Two fraction digits", input: "10.00", expected: 1000},
		{name: "One fraction digit", input: "12.5", expected: 1250},
		{name: "Maximum", input: "9000000000", expected: Max},
		{name: "Three fraction digits", input: "1.234", expectErr: true},
		{name: "Negative", input: "-1", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
		{name: "Letters", input: "ten", expectErr: true},
		{name: "Trailing dot", input: "1.", expectErr: true},
		{name: "Above maximum", input: "9000000000.01", expectErr: true},
		{name: "Exponent", input: "1e3", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMinor(t *testing.T) {
	a, err := ParseMinor(15000)
	require.NoError(t, err)
	assert.Equal(t, Amount(15000), a)

	_, err = ParseMinor(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseMinor(int64(Max) + 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected string
	}{
		{amount: 0, expected: "FC 0.00"},
		{amount: 5, expected: "FC 0.05"},
		{amount: 15000, expected: "FC 150.00"},
		{amount: 123456, expected: "FC 1,234.56"},
		{amount: Max, expected: "FC 9,000,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := map[string]string{
		"0":          "0.00",
		"7":          "7.00",
		"7.5":        "7.50",
		"7.05":       "7.05",
		"1234.56":    "1234.56",
		"100000.1":   "100000.10",
		"0000012.30": "12.30",
	}

	for input, canonical := range tests {
		t.Run(input, func(t *testing.T) {
			a, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, canonical, a.String())

			again, err := Parse(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, again)
		})
	}
}

func TestAddSub(t *testing.T) {
	sum, err := Add(100, 50)
	require.NoError(t, err)
	assert.Equal(t, Amount(150), sum)

	_, err = Add(Max, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Add(-1, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	diff, err := Sub(150, 30)
	require.NoError(t, err)
	assert.Equal(t, Amount(120), diff)

	diff, err = Sub(30, 30)
	require.NoError(t, err)
	assert.Equal(t, Amount(0), diff)

	_, err = Sub(30, 31)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "1234.56", Amount(123456).Decimal().StringFixed(2))
}

package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NormalizeVoucherCode strips the whitespace and case differences a cashier
// or a scanner may introduce.
func NormalizeVoucherCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsVoucherCode accepts 6 or 7 digit codes whose last digit is a Luhn check digit.
func IsVoucherCode(s string) bool {
	if len(s) < 6 || len(s) > 7 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return IsLuna(s)
}

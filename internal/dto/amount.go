package dto

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/funcoin/pkg/money"
)

// AmountRequestDTO carries an amount either as a decimal FC string or as
// minor units, never both.
type AmountRequestDTO struct {
	Amount     string `json:"amount,omitempty" example:"30.00"`
	MinorUnits *int64 `json:"minorUnits,omitempty" example:"3000"`
}

func (r AmountRequestDTO) ToAmount() (money.Amount, error) {
	amount := strings.TrimSpace(r.Amount)
	switch {
	case r.MinorUnits != nil && amount != "":
		return 0, fmt.Errorf("%w: give amount or minorUnits, not both", money.ErrInvalidAmount)
	case r.MinorUnits != nil:
		return money.ParseMinor(*r.MinorUnits)
	default:
		return money.Parse(amount)
	}
}

package dto

import (
	"fmt"
	"strconv"

	"github.com/GlebRadaev/funcoin/pkg/money"
)

// Denominations are keyed by their value in minor units, e.g. "100" for 1.00 FC.
type DecomposeRequestDTO struct {
	AmountRequestDTO
	Inventory map[string]int64 `json:"inventory,omitempty"`
}

type DecomposeResponseDTO struct {
	Amount string           `json:"amount" example:"1.87"`
	Counts map[string]int64 `json:"counts"`
}

// ToInventory returns nil, meaning unlimited, when no inventory was sent.
func (r DecomposeRequestDTO) ToInventory() (money.Inventory, error) {
	if r.Inventory == nil {
		return nil, nil
	}
	inv := make(money.Inventory, len(r.Inventory))
	for key, count := range r.Inventory {
		v, err := strconv.ParseInt(key, 10, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: denomination %q", money.ErrInvalidAmount, key)
		}
		d, err := money.ParseMinor(v)
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count for %q", money.ErrInvalidAmount, key)
		}
		inv[d] = count
	}
	return inv, nil
}

func CountsByKey(b money.Breakdown) map[string]int64 {
	counts := make(map[string]int64, len(b.Counts))
	for d, n := range b.Counts {
		counts[strconv.FormatInt(int64(d), 10)] = n
	}
	return counts
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

func TestAmountRequestDTO_ToAmount(t *testing.T) {
	minor := int64(3000)
	negative := int64(-1)

	tests := []struct {
		name        string
		req         AmountRequestDTO
		expected    money.Amount
		expectedErr error
	}{
		{name: "Decimal string", req: AmountRequestDTO{Amount: " 30.00 "}, expected: 3000},
		{name: "Minor units", req: AmountRequestDTO{MinorUnits: &minor}, expected: 3000},
		{name: "Both forms", req: AmountRequestDTO{Amount: "30", MinorUnits: &minor}, expectedErr: money.ErrInvalidAmount},
		{name: "Negative minor units", req: AmountRequestDTO{MinorUnits: &negative}, expectedErr: money.ErrInvalidAmount},
		{name: "Empty", req: AmountRequestDTO{}, expectedErr: money.ErrInvalidAmount},
		{name: "Three decimals", req: AmountRequestDTO{Amount: "1.234"}, expectedErr: money.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToAmount()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecomposeRequestDTO_ToInventory(t *testing.T) {
	inv, err := DecomposeRequestDTO{}.ToInventory()
	require.NoError(t, err)
	assert.Nil(t, inv)

	inv, err = DecomposeRequestDTO{Inventory: map[string]int64{"100": 1, "5": 0}}.ToInventory()
	require.NoError(t, err)
	assert.Equal(t, money.Inventory{100: 1, 5: 0}, inv)

	_, err = DecomposeRequestDTO{Inventory: map[string]int64{"abc": 1}}.ToInventory()
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = DecomposeRequestDTO{Inventory: map[string]int64{"100": -1}}.ToInventory()
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestNewHistoryResponse(t *testing.T) {
	entries := []domain.LedgerEntry{
		{ID: "b", Seq: 7, Type: domain.EntryBet, Amount: 3000, BalanceBefore: 15000, BalanceAfter: 12000},
		{ID: "a", Seq: 3, Type: domain.EntryDeposit, Amount: 15000, BalanceAfter: 15000, Reference: "123455"},
	}

	full := NewHistoryResponse(entries, 2)
	assert.Equal(t, int64(3), full.NextBefore)
	assert.Equal(t, "120.00", full.Entries[0].BalanceAfter)
	assert.Equal(t, "123455", full.Entries[1].Reference)

	short := NewHistoryResponse(entries, 10)
	assert.Zero(t, short.NextBefore)
}

func TestCountsByKey(t *testing.T) {
	b, err := money.Decompose(187, money.DefaultDenominations, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"100": 1, "50": 1, "10": 3, "5": 1, "1": 2}, CountsByKey(b))
}

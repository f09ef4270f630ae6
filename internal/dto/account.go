package dto

import (
	"time"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

type OpenAccountRequestDTO struct {
	AccountRef string `json:"accountRef" example:"player-1"`
}

type AccountResponseDTO struct {
	AccountRef string    `json:"accountRef" example:"player-1"`
	Balance    string    `json:"balance" example:"0.00"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BalanceResponseDTO struct {
	AccountRef string `json:"accountRef" example:"player-1"`
	Balance    string `json:"balance" example:"150.00"`
	Display    string `json:"display" example:"FC 150.00"`
}

type RedeemRequestDTO struct {
	Code string `json:"code" example:"123455"`
}

type RedeemResponseDTO struct {
	Balance   string `json:"balance" example:"150.00"`
	Credited  string `json:"credited" example:"150.00"`
	Remaining int    `json:"remaining" example:"0"`
	EntryID   string `json:"entryId" example:"8f14e45f-ceea-467a-9575-3c4d1a3e6f2b"`
}

type MovementResponseDTO struct {
	Amount  string `json:"amount" example:"30.00"`
	Balance string `json:"balance" example:"120.00"`
	EntryID string `json:"entryId,omitempty" example:"8f14e45f-ceea-467a-9575-3c4d1a3e6f2b"`
}

type CashOutResponseDTO struct {
	MovementResponseDTO
	Denominations map[string]int64 `json:"denominations,omitempty"`
}

func NewMovementResponse(m *domain.Movement) MovementResponseDTO {
	resp := MovementResponseDTO{
		Amount:  m.Amount.String(),
		Balance: m.BalanceAfter.String(),
	}
	if m.Entry != nil {
		resp.EntryID = m.Entry.ID
	}
	return resp
}

type LedgerEntryDTO struct {
	ID            string    `json:"id"`
	Seq           int64     `json:"seq" example:"42"`
	Type          string    `json:"type" example:"bet"`
	Amount        string    `json:"amount" example:"30.00"`
	BalanceBefore string    `json:"balanceBefore" example:"150.00"`
	BalanceAfter  string    `json:"balanceAfter" example:"120.00"`
	Reference     string    `json:"reference,omitempty" example:"123455"`
	CreatedAt     time.Time `json:"createdAt"`
}

type HistoryResponseDTO struct {
	Entries    []LedgerEntryDTO `json:"entries"`
	NextBefore int64            `json:"nextBefore,omitempty" example:"41"`
}

func NewHistoryResponse(entries []domain.LedgerEntry, limit int) HistoryResponseDTO {
	resp := HistoryResponseDTO{Entries: make([]LedgerEntryDTO, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = LedgerEntryDTO{
			ID:            e.ID,
			Seq:           e.Seq,
			Type:          string(e.Type),
			Amount:        e.Amount.String(),
			BalanceBefore: e.BalanceBefore.String(),
			BalanceAfter:  e.BalanceAfter.String(),
			Reference:     e.Reference,
			CreatedAt:     e.CreatedAt,
		}
	}
	if limit > 0 && len(entries) == limit {
		resp.NextBefore = entries[len(entries)-1].Seq
	}
	return resp
}

func NewBalanceResponse(ref string, balance money.Amount) BalanceResponseDTO {
	return BalanceResponseDTO{AccountRef: ref, Balance: balance.String(), Display: money.Format(balance)}
}

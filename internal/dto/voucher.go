package dto

import (
	"time"

	"github.com/GlebRadaev/funcoin/internal/domain"
)

type IssueVoucherRequestDTO struct {
	Amount         string     `json:"amount" example:"100.00"`
	BonusPercent   *int64     `json:"bonusPercent,omitempty" example:"50"`
	MaxRedemptions int        `json:"maxRedemptions,omitempty" example:"1"`
	PerUserLimit   int        `json:"perUserLimit,omitempty" example:"1"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty" example:"2025-01-01T00:00:00Z"`
}

type VoucherResponseDTO struct {
	Code           string     `json:"code" example:"123455"`
	Amount         string     `json:"amount" example:"100.00"`
	Bonus          string     `json:"bonus" example:"50.00"`
	TotalValue     string     `json:"totalValue" example:"150.00"`
	MaxRedemptions int        `json:"maxRedemptions" example:"1"`
	PerUserLimit   int        `json:"perUserLimit" example:"1"`
	RedeemedCount  int        `json:"redeemedCount" example:"0"`
	Remaining      int        `json:"remaining" example:"1"`
	Active         bool       `json:"active" example:"true"`
	State          string     `json:"state" example:"active"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	RedeemURL      string     `json:"redeemUrl,omitempty" example:"https://cashier.example/redeem?code=123455"`
}

func NewVoucherResponse(v *domain.Voucher, state domain.VoucherState) VoucherResponseDTO {
	return VoucherResponseDTO{
		Code:           v.Code,
		Amount:         v.Amount.String(),
		Bonus:          v.Bonus.String(),
		TotalValue:     v.TotalValue().String(),
		MaxRedemptions: v.MaxRedemptions,
		PerUserLimit:   v.PerUserLimit,
		RedeemedCount:  v.RedeemedCount,
		Remaining:      v.Remaining(),
		Active:         v.Active,
		State:          string(state),
		ExpiresAt:      v.ExpiresAt,
		CreatedAt:      v.CreatedAt,
	}
}

package service

import (
	"github.com/GlebRadaev/funcoin/internal/config"
	"github.com/GlebRadaev/funcoin/internal/handlers/accounts"
	"github.com/GlebRadaev/funcoin/internal/handlers/vouchers"
	"github.com/GlebRadaev/funcoin/internal/repo"
	"github.com/GlebRadaev/funcoin/internal/service/ledgerservice"
	"github.com/GlebRadaev/funcoin/internal/service/voucherservice"
)

type Services struct {
	VoucherService vouchers.Service
	LedgerService  accounts.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	voucherService := voucherservice.New(repo.Vouchers, voucherservice.Options{
		FrontendURL: cfg.FrontendURL,
		Bonus:       voucherservice.PercentBonus(cfg.BonusPercent),
	})
	ledgerService := ledgerservice.New(
		repo.Accounts,
		repo.Ledger,
		repo.VoucherLocks,
		repo.Redemptions,
		repo.TXManager,
		ledgerservice.Options{
			MinBet:        cfg.Limits.Min,
			MaxBet:        cfg.Limits.Max,
			Denominations: cfg.Ladder,
			TxTimeout:     cfg.TxTimeout,
		},
	)

	return &Services{
		VoucherService: voucherService,
		LedgerService:  ledgerService,
	}
}

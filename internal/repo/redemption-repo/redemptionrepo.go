package redemptionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// CountFor reports how many times ref has redeemed the voucher.
func (r *Repository) CountFor(ctx context.Context, code, ref string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM redemptions
        WHERE voucher_code = $1 AND account_ref = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, code, ref).Scan(&count); err != nil {
		zap.L().Error("failed to count redemptions",
			zap.String("voucher_code", code),
			zap.String("account_ref", ref),
			zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Create records a redemption. The (voucher, account, seq) key is unique, so
// a concurrent duplicate fails with domain.ErrDuplicateRedemption.
func (r *Repository) Create(ctx context.Context, rd domain.Redemption) error {
	query := `
        INSERT INTO redemptions (voucher_code, account_ref, seq, amount, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, rd.VoucherCode, rd.AccountRef, rd.Seq, int64(rd.Amount), rd.CreatedAt)
	if pg.IsUniqueViolation(err) {
		return domain.ErrDuplicateRedemption
	}
	if err != nil {
		zap.L().Error("failed to create redemption",
			zap.String("voucher_code", rd.VoucherCode),
			zap.String("account_ref", rd.AccountRef),
			zap.Error(err))
		return err
	}
	return nil
}

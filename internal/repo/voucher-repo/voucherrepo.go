package voucherrepo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
)

const voucherColumns = `code, amount, bonus, max_redemptions, per_user_limit, redeemed_count, active, expires_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create inserts v unless its code is taken. ok is false on a code collision.
func (r *Repository) Create(ctx context.Context, v *domain.Voucher) (bool, error) {
	query := `
        INSERT INTO vouchers (code, amount, bonus, max_redemptions, per_user_limit, redeemed_count, active, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, 0, TRUE, $6, $7)
        ON CONFLICT (code) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, v.Code, int64(v.Amount), int64(v.Bonus), v.MaxRedemptions, v.PerUserLimit, v.ExpiresAt, v.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create voucher", zap.String("voucher_code", v.Code), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	return r.find(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code)
}

// LockByCode reads the voucher and holds its row lock until the enclosing
// transaction ends.
func (r *Repository) LockByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	return r.find(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE code = $1 FOR UPDATE`, code)
}

func (r *Repository) find(ctx context.Context, query, code string) (*domain.Voucher, error) {
	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		zap.L().Error("failed to find voucher", zap.String("voucher_code", code), zap.Error(err))
		return nil, err
	}
	vouchers, err := scanVouchers(rows)
	if err != nil {
		return nil, err
	}
	if len(vouchers) == 0 {
		return nil, domain.ErrVoucherNotFound
	}
	return &vouchers[0], nil
}

// IncrementRedeemed bumps the counter unless the voucher is already used up.
func (r *Repository) IncrementRedeemed(ctx context.Context, code string) (int, error) {
	query := `
        UPDATE vouchers
        SET redeemed_count = redeemed_count + 1
        WHERE code = $1 AND redeemed_count < max_redemptions
        RETURNING redeemed_count
    `
	var count int
	err := r.db.QueryRow(ctx, query, code).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrVoucherExhausted
	}
	if err != nil {
		zap.L().Error("failed to increment redeemed count", zap.String("voucher_code", code), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SetActive(ctx context.Context, code string, active bool) error {
	query := `
        UPDATE vouchers
        SET active = $1
        WHERE code = $2
    `
	tag, err := r.db.Exec(ctx, query, active, code)
	if err != nil {
		zap.L().Error("failed to set voucher activity", zap.String("voucher_code", code), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Voucher, error) {
	sql, args, err := sq.Select(voucherColumns).
		From("vouchers").
		OrderBy("created_at DESC", "code").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		zap.L().Error("failed to list vouchers", zap.Error(err))
		return nil, err
	}
	return scanVouchers(rows)
}

func scanVouchers(rows pgx.Rows) ([]domain.Voucher, error) {
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		var v domain.Voucher
		err := rows.Scan(&v.Code, &v.Amount, &v.Bonus, &v.MaxRedemptions, &v.PerUserLimit, &v.RedeemedCount, &v.Active, &v.ExpiresAt, &v.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan voucher", zap.Error(err))
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate vouchers", zap.Error(err))
		return nil, err
	}
	return vouchers, nil
}

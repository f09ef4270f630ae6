package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create provisions an empty account. created is false when the account
// already existed; the stored row is returned either way.
func (r *Repository) Create(ctx context.Context, ref string) (*domain.Account, bool, error) {
	query := `
        INSERT INTO accounts (account_ref)
        VALUES ($1)
        ON CONFLICT (account_ref) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, ref)
	if err != nil {
		zap.L().Error("failed to create account", zap.String("account_ref", ref), zap.Error(err))
		return nil, false, err
	}

	account, err := r.Get(ctx, ref)
	if err != nil {
		return nil, false, err
	}
	return account, tag.RowsAffected() == 1, nil
}

func (r *Repository) Get(ctx context.Context, ref string) (*domain.Account, error) {
	query := `
        SELECT account_ref, balance, last_entry_at, created_at
        FROM accounts
        WHERE account_ref = $1
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, ref).Scan(&account.Ref, &account.Balance, &account.LastEntryAt, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		zap.L().Error("failed to get account", zap.String("account_ref", ref), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetBalance(ctx context.Context, ref string) (money.Amount, error) {
	return r.balance(ctx, `SELECT balance FROM accounts WHERE account_ref = $1`, ref)
}

// LockBalance reads the balance and holds the row lock until the enclosing
// transaction ends.
func (r *Repository) LockBalance(ctx context.Context, ref string) (money.Amount, error) {
	return r.balance(ctx, `SELECT balance FROM accounts WHERE account_ref = $1 FOR UPDATE`, ref)
}

func (r *Repository) balance(ctx context.Context, query, ref string) (money.Amount, error) {
	var balance money.Amount
	err := r.db.QueryRow(ctx, query, ref).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrAccountNotFound
	}
	if err != nil {
		zap.L().Error("failed to read balance", zap.String("account_ref", ref), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ApplyDelta adds delta to the balance in one guarded statement. The row is
// left untouched when the result would leave [0, money.Max].
func (r *Repository) ApplyDelta(ctx context.Context, ref string, delta int64, at time.Time) (*domain.BalanceChange, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1, last_entry_at = GREATEST(last_entry_at, $2)
        WHERE account_ref = $3 AND balance + $1 >= 0 AND balance + $1 <= $4
        RETURNING balance - $1, balance, last_entry_at
    `
	var change domain.BalanceChange
	err := r.db.QueryRow(ctx, query, delta, at, ref, int64(money.Max)).Scan(&change.Before, &change.After, &change.At)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.rejected(ctx, ref, delta)
	}
	if err != nil {
		zap.L().Error("failed to apply balance delta", zap.String("account_ref", ref), zap.Int64("delta", delta), zap.Error(err))
		return nil, err
	}
	return &change, nil
}

func (r *Repository) rejected(ctx context.Context, ref string, delta int64) error {
	balance, err := r.GetBalance(ctx, ref)
	if err != nil {
		return err
	}
	if delta < 0 {
		return &domain.InsufficientFundsError{AccountRef: ref, Balance: balance, Requested: money.Amount(-delta)}
	}
	return domain.ErrBalanceOverflow
}

// ListRefs pages through account refs in key order.
func (r *Repository) ListRefs(ctx context.Context, after string, limit int) ([]string, error) {
	query := `
        SELECT account_ref
        FROM accounts
        WHERE account_ref > $1
        ORDER BY account_ref
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, after, limit)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	refs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		zap.L().Error("failed to scan account refs", zap.Error(err))
		return nil, err
	}
	return refs, nil
}

package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type TxManager struct {
	pool beginner
	opts pgx.TxOptions
}

// NewTXManager accepts a *pgxpool.Pool or anything else that can open a
// transaction, such as a pgxmock pool.
func NewTXManager(pool beginner) *TxManager {
	return &TxManager{
		pool: pool,
		opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// Begin runs fn inside one transaction. A nested Begin joins the outer
// transaction. Cancellation observed before commit rolls back; once commit is
// issued it is no longer interruptible.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		zap.L().Error("failed to begin transaction", zap.Error(err))
		return classify(fmt.Errorf("begin transaction: %w", err))
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		rollback(ctx, tx)
		return classify(err)
	}

	if err := ctx.Err(); err != nil {
		rollback(ctx, tx)
		return domain.Transient(fmt.Errorf("aborted before commit: %w", err))
	}

	if err := tx.Commit(context.WithoutCancel(ctx)); err != nil {
		zap.L().Error("failed to commit transaction", zap.Error(err))
		return classify(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		zap.L().Error("failed to rollback transaction", zap.Error(err))
	}
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceled:
			return domain.Transient(err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.Transient(err)
	}
	return err
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

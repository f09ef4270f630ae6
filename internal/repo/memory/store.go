// Package memory keeps the ledger in process memory. It implements every
// repository the engine needs plus pg.TXManager, with the same isolation the
// Postgres backend provides: a unit of work holds the store exclusively and
// readers see either the state before it or after it.
package memory

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
)

// writerWeight is the full capacity of the lock. Readers take one slot.
const writerWeight = 1 << 16

type redemptionKey struct {
	code string
	ref  string
	seq  int
}

type Store struct {
	lock *semaphore.Weighted

	accounts    map[string]*domain.Account
	entries     map[string][]domain.LedgerEntry
	vouchers    map[string]*domain.Voucher
	redemptions map[redemptionKey]domain.Redemption
	seq         int64
}

var _ pg.TXManager = (*Store)(nil)

func New() *Store {
	return &Store{
		lock:        semaphore.NewWeighted(writerWeight),
		accounts:    make(map[string]*domain.Account),
		entries:     make(map[string][]domain.LedgerEntry),
		vouchers:    make(map[string]*domain.Voucher),
		redemptions: make(map[redemptionKey]domain.Redemption),
	}
}

type txKey struct{}

type txState struct {
	store *Store
	undo  []func()
}

func (tx *txState) onRollback(fn func()) {
	tx.undo = append(tx.undo, fn)
}

func (tx *txState) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func (s *Store) txFrom(ctx context.Context) (*txState, bool) {
	tx, ok := ctx.Value(txKey{}).(*txState)
	if !ok || tx.store != s {
		return nil, false
	}
	return tx, true
}

// Begin runs fn with exclusive access to the store. Any error, a panic, or a
// context cancelled before fn returns undoes every write fn made.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := s.txFrom(ctx); ok {
		return fn(ctx)
	}

	if err := s.lock.Acquire(ctx, writerWeight); err != nil {
		return domain.Transient(fmt.Errorf("acquire store lock: %w", err))
	}
	defer s.lock.Release(writerWeight)

	tx := &txState{store: s}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		tx.rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		tx.rollback()
		return domain.Transient(fmt.Errorf("aborted before commit: %w", err))
	}
	return nil
}

func (s *Store) read(ctx context.Context, fn func() error) error {
	if _, ok := s.txFrom(ctx); ok {
		return fn()
	}
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return domain.Transient(fmt.Errorf("acquire store lock: %w", err))
	}
	defer s.lock.Release(1)
	return fn()
}

// write joins the caller's unit of work or runs fn in its own.
func (s *Store) write(ctx context.Context, fn func(tx *txState) error) error {
	return s.Begin(ctx, func(ctx context.Context) error {
		tx, _ := s.txFrom(ctx)
		return fn(tx)
	})
}

func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{s: s}
}

func (s *Store) Ledger() *LedgerRepo {
	return &LedgerRepo{s: s}
}

func (s *Store) Vouchers() *VoucherRepo {
	return &VoucherRepo{s: s}
}

func (s *Store) Redemptions() *RedemptionRepo {
	return &RedemptionRepo{s: s}
}

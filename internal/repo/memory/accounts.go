package memory

import (
	"context"
	"sort"
	"time"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

type AccountRepo struct {
	s *Store
}

func (r *AccountRepo) Create(ctx context.Context, ref string) (*domain.Account, bool, error) {
	var (
		account domain.Account
		created bool
	)
	err := r.s.write(ctx, func(tx *txState) error {
		if existing, ok := r.s.accounts[ref]; ok {
			account = *existing
			return nil
		}
		now := time.Now().UTC()
		r.s.accounts[ref] = &domain.Account{Ref: ref, LastEntryAt: now, CreatedAt: now}
		tx.onRollback(func() { delete(r.s.accounts, ref) })
		account, created = *r.s.accounts[ref], true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &account, created, nil
}

func (r *AccountRepo) Get(ctx context.Context, ref string) (*domain.Account, error) {
	var account domain.Account
	err := r.s.read(ctx, func() error {
		a, ok := r.s.accounts[ref]
		if !ok {
			return domain.ErrAccountNotFound
		}
		account = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepo) GetBalance(ctx context.Context, ref string) (money.Amount, error) {
	account, err := r.Get(ctx, ref)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// LockBalance is GetBalance: inside a unit of work the whole store is locked.
func (r *AccountRepo) LockBalance(ctx context.Context, ref string) (money.Amount, error) {
	return r.GetBalance(ctx, ref)
}

func (r *AccountRepo) ApplyDelta(ctx context.Context, ref string, delta int64, at time.Time) (*domain.BalanceChange, error) {
	var change domain.BalanceChange
	err := r.s.write(ctx, func(tx *txState) error {
		a, ok := r.s.accounts[ref]
		if !ok {
			return domain.ErrAccountNotFound
		}
		next := int64(a.Balance) + delta
		switch {
		case next < 0:
			return &domain.InsufficientFundsError{AccountRef: ref, Balance: a.Balance, Requested: money.Amount(-delta)}
		case next > int64(money.Max):
			return domain.ErrBalanceOverflow
		}

		prev := *a
		tx.onRollback(func() { *a = prev })

		a.Balance = money.Amount(next)
		if at.After(a.LastEntryAt) {
			a.LastEntryAt = at
		}
		change = domain.BalanceChange{Before: prev.Balance, After: a.Balance, At: a.LastEntryAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &change, nil
}

func (r *AccountRepo) ListRefs(ctx context.Context, after string, limit int) ([]string, error) {
	var refs []string
	err := r.s.read(ctx, func() error {
		for ref := range r.s.accounts {
			if ref > after {
				refs = append(refs, ref)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(refs)
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

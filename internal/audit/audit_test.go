package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
	"github.com/GlebRadaev/funcoin/internal/repo/memory"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

func entry(seq int64, typ domain.EntryType, amount, before, after money.Amount) domain.LedgerEntry {
	return domain.LedgerEntry{
		Seq:           seq,
		AccountRef:    "A",
		Type:          typ,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, int(seq), 0, time.UTC),
	}
}

func TestVerify(t *testing.T) {
	chain := []domain.LedgerEntry{
		entry(1, domain.EntryDeposit, 15000, 0, 15000),
		entry(2, domain.EntryBet, 3000, 15000, 12000),
		entry(5, domain.EntryWin, 6000, 12000, 18000),
		entry(9, domain.EntryCashout, 18000, 18000, 0),
	}

	tests := []struct {
		name    string
		balance money.Amount
		entries []domain.LedgerEntry
		wantErr bool
	}{
		{name: "Empty ledger, empty balance", balance: 0},
		{name: "Empty ledger, stray balance", balance: 1, wantErr: true},
		{name: "Full chain", balance: 0, entries: chain},
		{name: "Prefix of chain", balance: 12000, entries: chain[:2]},
		{name: "Balance differs from last entry", balance: 12001, entries: chain[:2], wantErr: true},
		{
			name:    "Broken link",
			balance: 12000,
			entries: []domain.LedgerEntry{
				entry(1, domain.EntryDeposit, 15000, 0, 15000),
				entry(2, domain.EntryBet, 3000, 14000, 12000),
			},
			wantErr: true,
		},
		{
			name:    "After disagrees with amount",
			balance: 12000,
			entries: []domain.LedgerEntry{entry(1, domain.EntryDeposit, 10000, 0, 12000)},
			wantErr: true,
		},
		{
			name:    "Sequence goes backwards",
			balance: 12000,
			entries: []domain.LedgerEntry{
				entry(2, domain.EntryDeposit, 15000, 0, 15000),
				entry(1, domain.EntryBet, 3000, 15000, 12000),
			},
			wantErr: true,
		},
		{
			name:    "Negative running balance",
			balance: 0,
			entries: []domain.LedgerEntry{entry(1, domain.EntryBet, 100, 0, 0)},
			wantErr: true,
		},
		{
			name:    "Unknown type",
			balance: 100,
			entries: []domain.LedgerEntry{entry(1, "refund", 100, 0, 100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.balance, tt.entries)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvariantViolation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// seed gives ref a deposit followed by a bet, recorded consistently.
func seed(t *testing.T, store *memory.Store, ref string) {
	t.Helper()
	ctx := context.Background()
	_, _, err := store.Accounts().Create(ctx, ref)
	require.NoError(t, err)

	err = store.Begin(ctx, func(ctx context.Context) error {
		for _, step := range []struct {
			typ   domain.EntryType
			delta int64
		}{{domain.EntryDeposit, 1000}, {domain.EntryBet, -250}} {
			change, err := store.Accounts().ApplyDelta(ctx, ref, step.delta, time.Now())
			if err != nil {
				return err
			}
			amount := money.Amount(step.delta * step.typ.Sign())
			if _, err := store.Ledger().AppendEntry(ctx, domain.LedgerEntry{
				AccountRef:    ref,
				Type:          step.typ,
				Amount:        amount,
				BalanceBefore: change.Before,
				BalanceAfter:  change.After,
				CreatedAt:     change.At,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestService_AuditAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), store, Options{})
	defer service.workerPool.Close()

	seed(t, store, "A")
	report, err := service.AuditAccount(ctx, "A")
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, money.Amount(750), report.Balance)
	assert.Equal(t, 2, report.Entries)

	_, err = store.Accounts().ApplyDelta(ctx, "A", 100, time.Now())
	require.NoError(t, err)
	report, err = service.AuditAccount(ctx, "A")
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.ErrorIs(t, report.Violation, domain.ErrInvariantViolation)

	_, err = service.AuditAccount(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestService_AuditAccountTxFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), txManager, Options{})
	defer service.workerPool.Close()

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(domain.Transient(errors.New("serialization failure")))

	_, err := service.AuditAccount(context.Background(), "A")
	assert.True(t, domain.IsRetryable(err))
}

func TestService_Sweep(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), store, Options{BatchSize: 2, Workers: 3})
	defer service.workerPool.Close()

	for i := 0; i < 5; i++ {
		seed(t, store, fmt.Sprintf("acct-%d", i))
	}
	violations, err := service.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, violations)

	_, err = store.Accounts().ApplyDelta(ctx, "acct-3", -1, time.Now())
	require.NoError(t, err)
	_, err = store.Accounts().ApplyDelta(ctx, "acct-4", 1, time.Now())
	require.NoError(t, err)

	violations, err = service.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, violations)
}

func TestService_SweepListFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), store, Options{})
	defer service.workerPool.Close()

	_, _, err := store.Accounts().Create(context.Background(), "A")
	require.NoError(t, err)

	_, err = service.Sweep(ctx)
	assert.Error(t, err)
}

func TestService_Start(t *testing.T) {
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), store, Options{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

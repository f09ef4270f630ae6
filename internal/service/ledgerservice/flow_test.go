package ledgerservice

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/repo/memory"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

func newInMemory(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	service := New(store.Accounts(), store.Ledger(), store.Vouchers(), store.Redemptions(), store, Options{
		MinBet:    1,
		MaxBet:    1_000_000,
		TxTimeout: 5 * time.Second,
	})
	return service, store
}

func issue(t *testing.T, store *memory.Store, v domain.Voucher) {
	t.Helper()
	v.Active = true
	v.CreatedAt = time.Now()
	ok, err := store.Vouchers().Create(context.Background(), &v)
	require.NoError(t, err)
	require.True(t, ok)
}

func open(t *testing.T, service *Service, refs ...string) {
	t.Helper()
	for _, ref := range refs {
		_, _, err := service.OpenAccount(context.Background(), ref)
		require.NoError(t, err)
	}
}

// assertBalanceMatchesLedger checks that the stored balance equals the
// newest entry's balance after, and that the whole chain replays cleanly.
func assertBalanceMatchesLedger(t *testing.T, store *memory.Store, ref string) {
	t.Helper()
	ctx := context.Background()
	balance, err := store.Accounts().GetBalance(ctx, ref)
	require.NoError(t, err)

	entries, err := store.Ledger().Replay(ctx, ref)
	require.NoError(t, err)
	var running money.Amount
	for _, e := range entries {
		assert.Equal(t, running, e.BalanceBefore, "entry %d", e.Seq)
		running = money.Amount(int64(running) + e.Type.Sign()*int64(e.Amount))
		assert.Equal(t, running, e.BalanceAfter, "entry %d", e.Seq)
	}
	assert.Equal(t, running, balance)
}

func TestFlow_RedeemBetWinCashOut(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	open(t, service, "player-1")
	issue(t, store, domain.Voucher{Code: "123455", Amount: 10000, Bonus: 5000, MaxRedemptions: 1, PerUserLimit: 1})

	redeemed, err := service.RedeemVoucher(ctx, "123455", "player-1")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(15000), redeemed.Balance)
	assert.Equal(t, money.Amount(15000), redeemed.Credited)
	assert.Zero(t, redeemed.Remaining)
	assert.Equal(t, domain.EntryDeposit, redeemed.Entry.Type)
	assert.Equal(t, "123455", redeemed.Entry.Reference)
	assertBalanceMatchesLedger(t, store, "player-1")

	bet, err := service.PlaceBet(ctx, "player-1", 3000)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(12000), bet.BalanceAfter)
	assertBalanceMatchesLedger(t, store, "player-1")

	win, err := service.SettleWin(ctx, "player-1", 6000)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(18000), win.BalanceAfter)
	assertBalanceMatchesLedger(t, store, "player-1")

	cashout, err := service.CashOut(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(18000), cashout.Amount)
	assert.Equal(t, money.Amount(0), cashout.BalanceAfter)
	assertBalanceMatchesLedger(t, store, "player-1")

	history, err := service.History(ctx, "player-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)
	types := []domain.EntryType{history[0].Type, history[1].Type, history[2].Type, history[3].Type}
	assert.Equal(t, []domain.EntryType{domain.EntryCashout, domain.EntryWin, domain.EntryBet, domain.EntryDeposit}, types)

	breakdown, err := service.Decompose(cashout.Amount, nil)
	require.NoError(t, err)
	assert.Equal(t, cashout.Amount, breakdown.Sum())
}

func TestFlow_RejectionsLeaveNoTrace(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	open(t, service, "A")
	issue(t, store, domain.Voucher{Code: "123455", Amount: 10000, Bonus: 5000, MaxRedemptions: 5, PerUserLimit: 1})

	_, err := service.RedeemVoucher(ctx, "123455", "A")
	require.NoError(t, err)

	_, err = service.RedeemVoucher(ctx, "123455", "A")
	assert.ErrorIs(t, err, domain.ErrPerUserLimitExceeded)

	_, err = service.PlaceBet(ctx, "A", 15001)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = service.PlaceBet(ctx, "A", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)

	_, err = service.PlaceBet(ctx, "ghost", 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = service.RedeemVoucher(ctx, "1234566", "A")
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredVoucher)

	balance, err := service.GetBalance(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(15000), balance)

	entries, err := store.Ledger().Replay(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	v, err := store.Vouchers().FindByCode(ctx, "123455")
	require.NoError(t, err)
	assert.Equal(t, 1, v.RedeemedCount)
	assertBalanceMatchesLedger(t, store, "A")
}

func TestFlow_ZeroAmounts(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	open(t, service, "A")

	win, err := service.SettleWin(ctx, "A", 0)
	require.NoError(t, err)
	assert.Nil(t, win.Entry)

	cashout, err := service.CashOut(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, cashout.Entry)
	assert.Equal(t, money.Amount(0), cashout.Entry.Amount)

	entries, err := store.Ledger().Replay(ctx, "A")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryCashout, entries[0].Type)
}

func TestFlow_ExpiredVoucher(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	open(t, service, "A")
	expired := time.Now().Add(-time.Minute)
	issue(t, store, domain.Voucher{Code: "123455", Amount: 100, MaxRedemptions: 1, PerUserLimit: 1, ExpiresAt: &expired})

	_, err := service.RedeemVoucher(ctx, "123455", "A")
	var unavailable *domain.VoucherUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, domain.VoucherExpired, unavailable.State)
}

func TestFlow_ConcurrentRedemptionsOfSingleUseVoucher(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	issue(t, store, domain.Voucher{Code: "123455", Amount: 1000, MaxRedemptions: 1, PerUserLimit: 1})

	const players = 100
	refs := make([]string, players)
	for i := range refs {
		refs[i] = fmt.Sprintf("player-%d", i)
	}
	open(t, service, refs...)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		exhausted int
	)
	for _, ref := range refs {
		wg.Add(1)
		go func(ref string) {
			defer wg.Done()
			_, err := service.RedeemVoucher(ctx, "123455", ref)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, domain.ErrVoucherExhausted):
				exhausted++
			}
		}(ref)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, players-1, exhausted)

	v, err := store.Vouchers().FindByCode(ctx, "123455")
	require.NoError(t, err)
	assert.Equal(t, 1, v.RedeemedCount)

	var total money.Amount
	for _, ref := range refs {
		balance, err := store.Accounts().GetBalance(ctx, ref)
		require.NoError(t, err)
		total += balance
		assertBalanceMatchesLedger(t, store, ref)
	}
	assert.Equal(t, money.Amount(1000), total)
}

func TestFlow_ConcurrentBetsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	service, store := newInMemory(t)
	open(t, service, "A")
	issue(t, store, domain.Voucher{Code: "123455", Amount: 1000, MaxRedemptions: 1, PerUserLimit: 1})
	_, err := service.RedeemVoucher(ctx, "123455", "A")
	require.NoError(t, err)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.PlaceBet(ctx, "A", 30); err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 33, placed)
	balance, err := service.GetBalance(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(10), balance)
	assertBalanceMatchesLedger(t, store, "A")
}

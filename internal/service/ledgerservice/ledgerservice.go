package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/metrics"
	"github.com/GlebRadaev/funcoin/internal/pg"
	"github.com/GlebRadaev/funcoin/pkg/money"
	"github.com/GlebRadaev/funcoin/pkg/validate"
)

type AccountRepo interface {
	Create(ctx context.Context, ref string) (*domain.Account, bool, error)
	GetBalance(ctx context.Context, ref string) (money.Amount, error)
	LockBalance(ctx context.Context, ref string) (money.Amount, error)
	ApplyDelta(ctx context.Context, ref string, delta int64, at time.Time) (*domain.BalanceChange, error)
}

type LedgerRepo interface {
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	History(ctx context.Context, ref string, limit int, beforeSeq int64) ([]domain.LedgerEntry, error)
}

type VoucherRepo interface {
	LockByCode(ctx context.Context, code string) (*domain.Voucher, error)
	IncrementRedeemed(ctx context.Context, code string) (int, error)
}

type RedemptionRepo interface {
	CountFor(ctx context.Context, code, ref string) (int, error)
	Create(ctx context.Context, rd domain.Redemption) error
}

const maxAccountRefLen = 64

type Options struct {
	MinBet        money.Amount
	MaxBet        money.Amount
	Denominations money.Denominations
	TxTimeout     time.Duration
}

// Service is the only writer of balances, ledger entries, redemption records
// and voucher redemption counters. Every mutation runs as one unit of work.
type Service struct {
	accounts    AccountRepo
	ledger      LedgerRepo
	vouchers    VoucherRepo
	redemptions RedemptionRepo
	txManager   pg.TXManager
	opts        Options
	now         func() time.Time
}

func New(
	accounts AccountRepo,
	ledger LedgerRepo,
	vouchers VoucherRepo,
	redemptions RedemptionRepo,
	txManager pg.TXManager,
	opts Options,
) *Service {
	if opts.MinBet <= 0 {
		opts.MinBet = 1
	}
	if opts.MaxBet <= 0 || opts.MaxBet > money.Max {
		opts.MaxBet = money.Max
	}
	if len(opts.Denominations) == 0 {
		opts.Denominations = money.DefaultDenominations
	}
	return &Service{
		accounts:    accounts,
		ledger:      ledger,
		vouchers:    vouchers,
		redemptions: redemptions,
		txManager:   txManager,
		opts:        opts,
		now:         time.Now,
	}
}

func (s *Service) OpenAccount(ctx context.Context, ref string) (*domain.Account, bool, error) {
	ref, err := normalizeRef(ref)
	if err != nil {
		return nil, false, err
	}
	account, created, err := s.accounts.Create(ctx, ref)
	if err != nil {
		zap.L().Error("failed to open account", zap.String("account_ref", ref), zap.Error(err))
		return nil, false, err
	}
	if created {
		zap.L().Info("account opened", zap.String("account_ref", ref))
	}
	return account, created, nil
}

func (s *Service) GetBalance(ctx context.Context, ref string) (money.Amount, error) {
	ref, err := normalizeRef(ref)
	if err != nil {
		return 0, err
	}
	return s.accounts.GetBalance(ctx, ref)
}

// History returns the newest entries first. beforeSeq continues from the last
// entry of a previous page.
func (s *Service) History(ctx context.Context, ref string, limit int, beforeSeq int64) ([]domain.LedgerEntry, error) {
	ref, err := normalizeRef(ref)
	if err != nil {
		return nil, err
	}
	if _, err := s.accounts.GetBalance(ctx, ref); err != nil {
		return nil, err
	}
	entries, err := s.ledger.History(ctx, ref, limit, beforeSeq)
	if err != nil {
		zap.L().Error("failed to load history", zap.String("account_ref", ref), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// RedeemVoucher credits the voucher's total value to ref. The voucher row is
// locked first, so concurrent redemptions of one voucher queue behind each
// other and the counter and per-account records stay consistent.
func (s *Service) RedeemVoucher(ctx context.Context, code, ref string) (result *domain.RedemptionResult, err error) {
	started := time.Now()
	defer func() { s.finish("redeem", started, err, zap.String("voucher_code", code), zap.String("account_ref", ref)) }()

	if ref, err = normalizeRef(ref); err != nil {
		return nil, err
	}
	code = validate.NormalizeVoucherCode(code)
	if !validate.IsVoucherCode(code) {
		return nil, fmt.Errorf("%w: malformed code", domain.ErrInvalidOrExpiredVoucher)
	}

	err = s.unitOfWork(ctx, func(ctx context.Context) error {
		now := s.now()
		v, err := s.vouchers.LockByCode(ctx, code)
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return fmt.Errorf("%w: unknown code", domain.ErrInvalidOrExpiredVoucher)
		}
		if err != nil {
			return err
		}
		if state := v.State(now); state != domain.VoucherActive {
			return &domain.VoucherUnavailableError{Code: code, State: state, Remaining: v.Remaining()}
		}

		redeemed, err := s.redemptions.CountFor(ctx, code, ref)
		if err != nil {
			return err
		}
		if redeemed >= v.PerUserLimit {
			return &domain.PerUserLimitError{VoucherCode: code, AccountRef: ref, Limit: v.PerUserLimit}
		}

		total := v.TotalValue()
		entry, err := s.move(ctx, ref, domain.EntryDeposit, total, code)
		if err != nil {
			return err
		}

		err = s.redemptions.Create(ctx, domain.Redemption{
			VoucherCode: code,
			AccountRef:  ref,
			Seq:         redeemed + 1,
			Amount:      total,
			CreatedAt:   entry.CreatedAt,
		})
		if errors.Is(err, domain.ErrDuplicateRedemption) {
			return &domain.PerUserLimitError{VoucherCode: code, AccountRef: ref, Limit: v.PerUserLimit}
		}
		if err != nil {
			return err
		}

		count, err := s.vouchers.IncrementRedeemed(ctx, code)
		if errors.Is(err, domain.ErrVoucherExhausted) {
			return &domain.VoucherUnavailableError{Code: code, State: domain.VoucherExhausted}
		}
		if err != nil {
			return err
		}

		result = &domain.RedemptionResult{
			Balance:   entry.BalanceAfter,
			Credited:  total,
			Remaining: max(v.MaxRedemptions-count, 0),
			Entry:     entry,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) PlaceBet(ctx context.Context, ref string, bet money.Amount) (m *domain.Movement, err error) {
	started := time.Now()
	defer func() { s.finish("bet", started, err, zap.String("account_ref", ref), zap.Stringer("amount", bet)) }()

	if ref, err = normalizeRef(ref); err != nil {
		return nil, err
	}
	if bet < s.opts.MinBet || bet > s.opts.MaxBet {
		return nil, fmt.Errorf("%w: %s outside [%s, %s]", domain.ErrInvalidBet, bet, s.opts.MinBet, s.opts.MaxBet)
	}
	return s.mutate(ctx, ref, domain.EntryBet, bet)
}

// SettleWin credits a non-negative win. A zero win writes nothing and reports
// the current balance.
func (s *Service) SettleWin(ctx context.Context, ref string, win money.Amount) (m *domain.Movement, err error) {
	started := time.Now()
	defer func() { s.finish("win", started, err, zap.String("account_ref", ref), zap.Stringer("amount", win)) }()

	if ref, err = normalizeRef(ref); err != nil {
		return nil, err
	}
	if !win.Valid() {
		return nil, fmt.Errorf("%w: win %d minor units", money.ErrInvalidAmount, int64(win))
	}
	if win == 0 {
		balance, err := s.accounts.GetBalance(ctx, ref)
		if err != nil {
			return nil, err
		}
		return &domain.Movement{Amount: 0, BalanceAfter: balance}, nil
	}
	return s.mutate(ctx, ref, domain.EntryWin, win)
}

// CashOut pays out the whole balance. An empty account still gets a cashout
// entry of zero.
func (s *Service) CashOut(ctx context.Context, ref string) (m *domain.Movement, err error) {
	started := time.Now()
	defer func() { s.finish("cashout", started, err, zap.String("account_ref", ref)) }()

	if ref, err = normalizeRef(ref); err != nil {
		return nil, err
	}
	err = s.unitOfWork(ctx, func(ctx context.Context) error {
		balance, err := s.accounts.LockBalance(ctx, ref)
		if err != nil {
			return err
		}
		entry, err := s.move(ctx, ref, domain.EntryCashout, balance, "")
		if err != nil {
			return err
		}
		if entry.BalanceAfter != 0 {
			return fmt.Errorf("%w: cashout left %s on %s", domain.ErrInvariantViolation, entry.BalanceAfter, ref)
		}
		m = &domain.Movement{Amount: balance, BalanceAfter: 0, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Decompose splits an amount over the configured denomination ladder.
func (s *Service) Decompose(amount money.Amount, inventory money.Inventory) (money.Breakdown, error) {
	return money.Decompose(amount, s.opts.Denominations, inventory)
}

func (s *Service) mutate(ctx context.Context, ref string, typ domain.EntryType, amount money.Amount) (*domain.Movement, error) {
	var m *domain.Movement
	err := s.unitOfWork(ctx, func(ctx context.Context) error {
		entry, err := s.move(ctx, ref, typ, amount, "")
		if err != nil {
			return err
		}
		m = &domain.Movement{Amount: amount, BalanceAfter: entry.BalanceAfter, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// move applies one signed balance change and appends its ledger entry. It
// must run inside a unit of work.
func (s *Service) move(ctx context.Context, ref string, typ domain.EntryType, amount money.Amount, reference string) (*domain.LedgerEntry, error) {
	sign := typ.Sign()
	if sign == 0 || !amount.Valid() {
		return nil, fmt.Errorf("%w: %s of %d minor units", domain.ErrInvariantViolation, typ, int64(amount))
	}
	delta := sign * int64(amount)

	change, err := s.accounts.ApplyDelta(ctx, ref, delta, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if int64(change.After)-int64(change.Before) != delta || !change.After.Valid() {
		return nil, fmt.Errorf("%w: %s moved %s from %s to %s", domain.ErrInvariantViolation, typ, amount, change.Before, change.After)
	}

	return s.ledger.AppendEntry(ctx, domain.LedgerEntry{
		AccountRef:    ref,
		Type:          typ,
		Amount:        amount,
		BalanceBefore: change.Before,
		BalanceAfter:  change.After,
		Reference:     reference,
		CreatedAt:     change.At,
	})
}

func (s *Service) unitOfWork(ctx context.Context, fn pg.TransactionalFn) error {
	if s.opts.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TxTimeout)
		defer cancel()
	}
	return s.txManager.Begin(ctx, fn)
}

func (s *Service) finish(op string, started time.Time, err error, fields ...zap.Field) {
	switch {
	case err == nil:
		metrics.Observe(op, metrics.OutcomeOK, started)
		zap.L().Debug("ledger operation applied", append(fields, zap.String("operation", op))...)
	case domain.IsClientError(err):
		metrics.Observe(op, metrics.OutcomeRejected, started)
		zap.L().Info("ledger operation rejected", append(fields, zap.String("operation", op), zap.Error(err))...)
	case domain.IsRetryable(err):
		metrics.Observe(op, metrics.OutcomeTransient, started)
		zap.L().Warn("ledger operation aborted", append(fields, zap.String("operation", op), zap.Error(err))...)
	default:
		metrics.Observe(op, metrics.OutcomeError, started)
		zap.L().Error("ledger operation failed", append(fields, zap.String("operation", op), zap.Error(err))...)
	}
}

func normalizeRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || len(ref) > maxAccountRefLen {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAccountRef, ref)
	}
	return ref, nil
}

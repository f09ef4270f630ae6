package domain

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/funcoin/pkg/money"
)

var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrInvalidAccountRef       = errors.New("invalid account reference")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrBalanceOverflow         = errors.New("balance would exceed maximum")
	ErrInvalidBet              = errors.New("invalid bet amount")
	ErrInvalidOrExpiredVoucher = errors.New("invalid or expired voucher")
	ErrVoucherExhausted        = errors.New("voucher exhausted")
	ErrPerUserLimitExceeded    = errors.New("per-user redemption limit exceeded")
	ErrVoucherNotFound         = errors.New("voucher not found")
	ErrDuplicateRedemption     = errors.New("duplicate redemption record")
	ErrInvalidVoucherParams    = errors.New("invalid voucher parameters")
	ErrCodeSpaceExhausted      = errors.New("could not allocate a unique voucher code")
	ErrTransient               = errors.New("transient storage error")
	ErrInvariantViolation      = errors.New("ledger invariant violation")
)

type InsufficientFundsError struct {
	AccountRef string
	Balance    money.Amount
	Requested  money.Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on %s: balance %s, requested %s", e.AccountRef, e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

type PerUserLimitError struct {
	VoucherCode string
	AccountRef  string
	Limit       int
}

func (e *PerUserLimitError) Error() string {
	return fmt.Sprintf("account %s already redeemed voucher %s %d time(s)", e.AccountRef, e.VoucherCode, e.Limit)
}

func (e *PerUserLimitError) Unwrap() error {
	return ErrPerUserLimitExceeded
}

type VoucherUnavailableError struct {
	Code      string
	State     VoucherState
	Remaining int
}

func (e *VoucherUnavailableError) Error() string {
	return fmt.Sprintf("voucher %s is %s", e.Code, e.State)
}

func (e *VoucherUnavailableError) Unwrap() error {
	if e.State == VoucherExhausted {
		return ErrVoucherExhausted
	}
	return ErrInvalidOrExpiredVoucher
}

// Transient marks err as retryable while keeping it inspectable.
func Transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrVoucherNotFound)
}

// IsClientError reports rejections caused by the request itself rather than
// by the store.
func IsClientError(err error) bool {
	switch {
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInsufficientDenominations),
		errors.Is(err, ErrInvalidAccountRef),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrBalanceOverflow),
		errors.Is(err, ErrInvalidBet),
		errors.Is(err, ErrInvalidOrExpiredVoucher),
		errors.Is(err, ErrVoucherExhausted),
		errors.Is(err, ErrPerUserLimitExceeded),
		errors.Is(err, ErrInvalidVoucherParams):
		return true
	}
	return IsNotFound(err)
}

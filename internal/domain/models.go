package domain

import (
	"time"

	"github.com/GlebRadaev/funcoin/pkg/money"
)

type EntryType string

const (
	EntryDeposit EntryType = "deposit"
	EntryBet     EntryType = "bet"
	EntryWin     EntryType = "win"
	EntryCashout EntryType = "cashout"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryDeposit, EntryBet, EntryWin, EntryCashout:
		return true
	}
	return false
}

// Sign is +1 for credits and -1 for debits. Unknown types return 0.
func (t EntryType) Sign() int64 {
	switch t {
	case EntryDeposit, EntryWin:
		return 1
	case EntryBet, EntryCashout:
		return -1
	}
	return 0
}

type Account struct {
	Ref         string       `db:"account_ref"`
	Balance     money.Amount `db:"balance"`
	LastEntryAt time.Time    `db:"last_entry_at"`
	CreatedAt   time.Time    `db:"created_at"`
}

type LedgerEntry struct {
	Seq           int64        `db:"seq"`
	ID            string       `db:"id"`
	AccountRef    string       `db:"account_ref"`
	Type          EntryType    `db:"type"`
	Amount        money.Amount `db:"amount"`
	BalanceBefore money.Amount `db:"balance_before"`
	BalanceAfter  money.Amount `db:"balance_after"`
	Reference     string       `db:"reference"`
	CreatedAt     time.Time    `db:"created_at"`
}

type VoucherState string

const (
	VoucherActive    VoucherState = "active"
	VoucherExhausted VoucherState = "exhausted"
	VoucherExpired   VoucherState = "expired"
	VoucherInactive  VoucherState = "inactive"
)

type Voucher struct {
	Code           string       `db:"code"`
	Amount         money.Amount `db:"amount"`
	Bonus          money.Amount `db:"bonus"`
	MaxRedemptions int          `db:"max_redemptions"`
	PerUserLimit   int          `db:"per_user_limit"`
	RedeemedCount  int          `db:"redeemed_count"`
	Active         bool         `db:"active"`
	ExpiresAt      *time.Time   `db:"expires_at"`
	CreatedAt      time.Time    `db:"created_at"`
}

// TotalValue is the amount credited on redemption.
func (v *Voucher) TotalValue() money.Amount {
	return v.Amount + v.Bonus
}

func (v *Voucher) IsExpired(now time.Time) bool {
	return v.ExpiresAt != nil && !now.Before(*v.ExpiresAt)
}

func (v *Voucher) Remaining() int {
	return max(v.MaxRedemptions-v.RedeemedCount, 0)
}

func (v *Voucher) IsRedeemable(now time.Time) bool {
	return v.State(now) == VoucherActive
}

// State reports the first terminal condition that applies, in the order
// inactive, expired, exhausted.
func (v *Voucher) State(now time.Time) VoucherState {
	switch {
	case !v.Active:
		return VoucherInactive
	case v.IsExpired(now):
		return VoucherExpired
	case v.RedeemedCount >= v.MaxRedemptions:
		return VoucherExhausted
	}
	return VoucherActive
}

type Redemption struct {
	VoucherCode string       `db:"voucher_code"`
	AccountRef  string       `db:"account_ref"`
	Seq         int          `db:"seq"`
	Amount      money.Amount `db:"amount"`
	CreatedAt   time.Time    `db:"created_at"`
}

// BalanceChange is what the store reports after a guarded delta.
type BalanceChange struct {
	Before money.Amount
	After  money.Amount
	At     time.Time
}

type Movement struct {
	Amount       money.Amount
	BalanceAfter money.Amount
	Entry        *LedgerEntry
}

type RedemptionResult struct {
	Balance   money.Amount
	Credited  money.Amount
	Remaining int
	Entry     *LedgerEntry
}

package voucherservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/pkg/money"
	"github.com/GlebRadaev/funcoin/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, v *domain.Voucher) (bool, error)
	FindByCode(ctx context.Context, code string) (*domain.Voucher, error)
	SetActive(ctx context.Context, code string, active bool) error
	ListRecent(ctx context.Context, limit int) ([]domain.Voucher, error)
}

const (
	codeDigits         = 6
	fallbackCodeDigits = 7
	collisionAttempts  = 10

	DefaultBonusPercent = 50
	DefaultListLimit    = 25
	MaxListLimit        = 100
)

// BonusPolicy computes the bonus credited on top of a voucher's face value.
type BonusPolicy func(amount money.Amount) money.Amount

// PercentBonus returns pct percent of the amount rounded half up to a minor unit.
func PercentBonus(pct int64) BonusPolicy {
	return func(amount money.Amount) money.Amount {
		bonus := decimal.NewFromInt(int64(amount)).
			Mul(decimal.NewFromInt(pct)).
			Div(decimal.NewFromInt(100)).
			Round(0)
		return money.Amount(bonus.IntPart())
	}
}

// CodeGenerator returns a random numeric code of the given length.
type CodeGenerator func(digits int) (string, error)

// LuhnCode draws digits-1 random digits and appends a Luhn check digit. The
// first digit is never zero.
func LuhnCode(digits int) (string, error) {
	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-2)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	_, code, err := goluhn.Calculate(n.Add(n, low).String())
	if err != nil {
		return "", err
	}
	return code, nil
}

type IssueParams struct {
	Amount         money.Amount
	Bonus          BonusPolicy
	MaxRedemptions int
	PerUserLimit   int
	ExpiresAt      *time.Time
}

type IssuedVoucher struct {
	Voucher   *domain.Voucher
	RedeemURL string
}

type Options struct {
	FrontendURL string
	Bonus       BonusPolicy
}

type Service struct {
	repo        Repo
	frontendURL string
	bonus       BonusPolicy
	generate    CodeGenerator
	now         func() time.Time
}

func New(repo Repo, opts Options) *Service {
	bonus := opts.Bonus
	if bonus == nil {
		bonus = PercentBonus(DefaultBonusPercent)
	}
	return &Service{
		repo:        repo,
		frontendURL: strings.TrimRight(opts.FrontendURL, "/"),
		bonus:       bonus,
		generate:    LuhnCode,
		now:         time.Now,
	}
}

func (s *Service) Issue(ctx context.Context, p IssueParams) (*IssuedVoucher, error) {
	now := s.now().UTC()
	v, err := s.prepare(p, now)
	if err != nil {
		zap.L().Info("voucher rejected", zap.Stringer("amount", p.Amount), zap.Error(err))
		return nil, err
	}

	for attempt := 0; attempt < 2*collisionAttempts; attempt++ {
		digits := codeDigits
		if attempt >= collisionAttempts {
			digits = fallbackCodeDigits
		}
		code, err := s.generate(digits)
		if err != nil {
			zap.L().Error("failed to generate voucher code", zap.Error(err))
			return nil, err
		}

		v.Code = code
		ok, err := s.repo.Create(ctx, v)
		if err != nil {
			zap.L().Error("failed to store voucher", zap.String("voucher_code", code), zap.Error(err))
			return nil, err
		}
		if ok {
			zap.L().Info("voucher issued",
				zap.String("voucher_code", code),
				zap.Stringer("amount", v.Amount),
				zap.Stringer("bonus", v.Bonus))
			return &IssuedVoucher{Voucher: v, RedeemURL: s.redeemURL(code)}, nil
		}
		zap.L().Debug("voucher code collision", zap.String("voucher_code", code), zap.Int("attempt", attempt+1))
	}

	zap.L().Error("voucher code space exhausted")
	return nil, domain.ErrCodeSpaceExhausted
}

func (s *Service) prepare(p IssueParams, now time.Time) (*domain.Voucher, error) {
	if p.Amount <= 0 || !p.Amount.Valid() {
		return nil, fmt.Errorf("%w: voucher amount must be positive", money.ErrInvalidAmount)
	}
	maxRedemptions, perUserLimit := p.MaxRedemptions, p.PerUserLimit
	if maxRedemptions == 0 {
		maxRedemptions = 1
	}
	if perUserLimit == 0 {
		perUserLimit = 1
	}
	if maxRedemptions < 0 || perUserLimit < 0 {
		return nil, fmt.Errorf("%w: redemption limits must be positive", domain.ErrInvalidVoucherParams)
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return nil, fmt.Errorf("%w: expiry is in the past", domain.ErrInvalidVoucherParams)
	}

	policy := p.Bonus
	if policy == nil {
		policy = s.bonus
	}
	bonus := policy(p.Amount)
	if _, err := money.Add(p.Amount, bonus); err != nil {
		return nil, fmt.Errorf("%w: total value %w", money.ErrInvalidAmount, err)
	}

	return &domain.Voucher{
		Amount:         p.Amount,
		Bonus:          bonus,
		MaxRedemptions: maxRedemptions,
		PerUserLimit:   perUserLimit,
		Active:         true,
		ExpiresAt:      p.ExpiresAt,
		CreatedAt:      now,
	}, nil
}

func (s *Service) redeemURL(code string) string {
	return s.frontendURL + "/redeem?code=" + url.QueryEscape(code)
}

func (s *Service) Lookup(ctx context.Context, code string) (*domain.Voucher, error) {
	code = validate.NormalizeVoucherCode(code)
	if !validate.IsVoucherCode(code) {
		return nil, domain.ErrVoucherNotFound
	}
	v, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrVoucherNotFound) {
			zap.L().Error("failed to look up voucher", zap.String("voucher_code", code), zap.Error(err))
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) IsRedeemable(v *domain.Voucher) bool {
	return v.IsRedeemable(s.now())
}

func (s *Service) State(v *domain.Voucher) domain.VoucherState {
	return v.State(s.now())
}

func (s *Service) SetActive(ctx context.Context, code string, active bool) error {
	code = validate.NormalizeVoucherCode(code)
	if !validate.IsVoucherCode(code) {
		return domain.ErrVoucherNotFound
	}
	if err := s.repo.SetActive(ctx, code, active); err != nil {
		if !errors.Is(err, domain.ErrVoucherNotFound) {
			zap.L().Error("failed to change voucher activity", zap.String("voucher_code", code), zap.Error(err))
		}
		return err
	}
	zap.L().Info("voucher activity changed", zap.String("voucher_code", code), zap.Bool("active", active))
	return nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Voucher, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	vouchers, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list vouchers", zap.Error(err))
		return nil, err
	}
	return vouchers, nil
}

package memory

import (
	"context"
	"sort"

	"github.com/GlebRadaev/funcoin/internal/domain"
)

type VoucherRepo struct {
	s *Store
}

func (r *VoucherRepo) Create(ctx context.Context, v *domain.Voucher) (bool, error) {
	var ok bool
	err := r.s.write(ctx, func(tx *txState) error {
		if _, exists := r.s.vouchers[v.Code]; exists {
			return nil
		}
		stored := *v
		stored.RedeemedCount = 0
		stored.Active = true
		r.s.vouchers[v.Code] = &stored
		tx.onRollback(func() { delete(r.s.vouchers, v.Code) })
		ok = true
		return nil
	})
	return ok, err
}

func (r *VoucherRepo) FindByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	var v domain.Voucher
	err := r.s.read(ctx, func() error {
		stored, ok := r.s.vouchers[code]
		if !ok {
			return domain.ErrVoucherNotFound
		}
		v = *stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepo) LockByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	return r.FindByCode(ctx, code)
}

func (r *VoucherRepo) IncrementRedeemed(ctx context.Context, code string) (int, error) {
	var count int
	err := r.s.write(ctx, func(tx *txState) error {
		v, ok := r.s.vouchers[code]
		if !ok {
			return domain.ErrVoucherNotFound
		}
		if v.RedeemedCount >= v.MaxRedemptions {
			return domain.ErrVoucherExhausted
		}
		v.RedeemedCount++
		tx.onRollback(func() { v.RedeemedCount-- })
		count = v.RedeemedCount
		return nil
	})
	return count, err
}

func (r *VoucherRepo) SetActive(ctx context.Context, code string, active bool) error {
	return r.s.write(ctx, func(tx *txState) error {
		v, ok := r.s.vouchers[code]
		if !ok {
			return domain.ErrVoucherNotFound
		}
		prev := v.Active
		v.Active = active
		tx.onRollback(func() { v.Active = prev })
		return nil
	})
}

func (r *VoucherRepo) ListRecent(ctx context.Context, limit int) ([]domain.Voucher, error) {
	var out []domain.Voucher
	err := r.s.read(ctx, func() error {
		out = make([]domain.Voucher, 0, len(r.s.vouchers))
		for _, v := range r.s.vouchers {
			out = append(out, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type RedemptionRepo struct {
	s *Store
}

func (r *RedemptionRepo) CountFor(ctx context.Context, code, ref string) (int, error) {
	var n int
	err := r.s.read(ctx, func() error {
		for k := range r.s.redemptions {
			if k.code == code && k.ref == ref {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *RedemptionRepo) Create(ctx context.Context, rd domain.Redemption) error {
	return r.s.write(ctx, func(tx *txState) error {
		key := redemptionKey{code: rd.VoucherCode, ref: rd.AccountRef, seq: rd.Seq}
		if _, exists := r.s.redemptions[key]; exists {
			return domain.ErrDuplicateRedemption
		}
		r.s.redemptions[key] = rd
		tx.onRollback(func() { delete(r.s.redemptions, key) })
		return nil
	})
}

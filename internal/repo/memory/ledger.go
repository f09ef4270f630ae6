package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/GlebRadaev/funcoin/internal/domain"
	ledgerrepo "github.com/GlebRadaev/funcoin/internal/repo/ledger-repo"
)

type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) AppendEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	err := r.s.write(ctx, func(tx *txState) error {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		// Sequence numbers are not reused after a rollback, like BIGSERIAL.
		r.s.seq++
		entry.Seq = r.s.seq

		ref := entry.AccountRef
		r.s.entries[ref] = append(r.s.entries[ref], entry)
		tx.onRollback(func() {
			entries := r.s.entries[ref]
			r.s.entries[ref] = entries[:len(entries)-1]
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *LedgerRepo) History(ctx context.Context, ref string, limit int, beforeSeq int64) ([]domain.LedgerEntry, error) {
	limit = ledgerrepo.ClampLimit(limit)

	var out []domain.LedgerEntry
	err := r.s.read(ctx, func() error {
		entries := r.s.entries[ref]
		for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
			if beforeSeq > 0 && entries[i].Seq >= beforeSeq {
				continue
			}
			out = append(out, entries[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LedgerRepo) Latest(ctx context.Context, ref string) (*domain.LedgerEntry, error) {
	entries, err := r.History(ctx, ref, 1, 0)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

func (r *LedgerRepo) Replay(ctx context.Context, ref string) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	err := r.s.read(ctx, func() error {
		out = slices.Clone(r.s.entries[ref])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package ledgerrepo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/pg"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

var entryColumns = []string{
	"seq", "id", "account_ref", "type", "amount", "balance_before", "balance_after", "reference", "created_at",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// AppendEntry stores a new entry and returns it with its id and seq filled in.
// Entries are never updated afterwards.
func (r *Repository) AppendEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	sql, args, err := sq.Insert("ledger_entries").
		Columns("id", "account_ref", "type", "amount", "balance_before", "balance_after", "reference", "created_at").
		Values(entry.ID, entry.AccountRef, string(entry.Type), int64(entry.Amount), int64(entry.BalanceBefore), int64(entry.BalanceAfter), entry.Reference, entry.CreatedAt).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.Seq); err != nil {
		zap.L().Error("failed to append ledger entry",
			zap.String("account_ref", entry.AccountRef),
			zap.String("type", string(entry.Type)),
			zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

// ClampLimit maps a requested page size onto [1, MaxHistoryLimit].
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

// History returns entries newest first. A positive beforeSeq continues a
// previous page.
func (r *Repository) History(ctx context.Context, ref string, limit int, beforeSeq int64) ([]domain.LedgerEntry, error) {
	query := sq.Select(entryColumns...).
		From("ledger_entries").
		Where(sq.Eq{"account_ref": ref}).
		OrderBy("seq DESC").
		Limit(uint64(ClampLimit(limit))).
		PlaceholderFormat(sq.Dollar)
	if beforeSeq > 0 {
		query = query.Where(sq.Lt{"seq": beforeSeq})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanEntries(ctx, sql, args...)
}

// Latest returns the newest entry, or nil when the account has none.
func (r *Repository) Latest(ctx context.Context, ref string) (*domain.LedgerEntry, error) {
	entries, err := r.History(ctx, ref, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Replay returns every entry of the account in the order it was applied.
func (r *Repository) Replay(ctx context.Context, ref string) ([]domain.LedgerEntry, error) {
	sql, args, err := sq.Select(entryColumns...).
		From("ledger_entries").
		Where(sq.Eq{"account_ref": ref}).
		OrderBy("seq ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanEntries(ctx, sql, args...)
}

func (r *Repository) scanEntries(ctx context.Context, sql string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		zap.L().Error("failed to query ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.Seq, &e.ID, &e.AccountRef, &e.Type, &e.Amount, &e.BalanceBefore, &e.BalanceAfter, &e.Reference, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

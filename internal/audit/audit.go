package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/metrics"
	"github.com/GlebRadaev/funcoin/internal/pg"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

type AccountRepo interface {
	ListRefs(ctx context.Context, after string, limit int) ([]string, error)
	LockBalance(ctx context.Context, ref string) (money.Amount, error)
}

type LedgerRepo interface {
	Replay(ctx context.Context, ref string) ([]domain.LedgerEntry, error)
}

const (
	DefaultInterval  = time.Minute
	DefaultBatchSize = 500
	DefaultWorkers   = 4
)

type Options struct {
	Interval  time.Duration
	BatchSize int
	Workers   int
}

// Report is the outcome of replaying one account.
type Report struct {
	AccountRef string
	Balance    money.Amount
	Entries    int
	Violation  error
}

func (r Report) OK() bool {
	return r.Violation == nil
}

// Service periodically replays every account's ledger and compares the result
// with the stored balance. It never writes.
type Service struct {
	accounts   AccountRepo
	ledger     LedgerRepo
	txManager  pg.TXManager
	workerPool WorkerPoolI
	interval   time.Duration
	batchSize  int
	inFlight   sync.Map
}

func New(accounts AccountRepo, ledger LedgerRepo, txManager pg.TXManager, opts Options) *Service {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Service{
		accounts:   accounts,
		ledger:     ledger,
		txManager:  txManager,
		workerPool: NewWorkerPool(opts.Workers),
		interval:   opts.Interval,
		batchSize:  opts.BatchSize,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("ledger auditor started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("ledger auditor stopped")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zap.L().Error("audit sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep audits every account once, page by page, and returns the number of
// accounts whose ledger disagreed with the stored balance.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	var (
		mu         sync.Mutex
		violations int
		after      string
	)
	for {
		refs, err := s.accounts.ListRefs(ctx, after, s.batchSize)
		if err != nil {
			return violations, fmt.Errorf("list accounts after %q: %w", after, err)
		}
		if len(refs) == 0 {
			break
		}

		var g errgroup.Group
		for _, ref := range refs {
			if _, loaded := s.inFlight.LoadOrStore(ref, struct{}{}); loaded {
				continue
			}
			done := make(chan struct{})
			g.Go(func() error {
				err := s.workerPool.AddTask(ctx, func() error {
					defer close(done)
					defer s.inFlight.Delete(ref)
					report, err := s.AuditAccount(ctx, ref)
					if err != nil {
						return err
					}
					if !report.OK() {
						mu.Lock()
						violations++
						mu.Unlock()
					}
					return nil
				})
				if err != nil {
					s.inFlight.Delete(ref)
					return err
				}
				<-done
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return violations, err
		}

		if len(refs) < s.batchSize {
			break
		}
		after = refs[len(refs)-1]
	}
	return violations, nil
}

// AuditAccount replays ref's ledger against its balance. The balance row is
// locked for the duration so no mutation can interleave with the replay.
func (s *Service) AuditAccount(ctx context.Context, ref string) (Report, error) {
	report := Report{AccountRef: ref}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.accounts.LockBalance(ctx, ref)
		if err != nil {
			return err
		}
		entries, err := s.ledger.Replay(ctx, ref)
		if err != nil {
			return err
		}
		report.Balance = balance
		report.Entries = len(entries)
		report.Violation = Verify(balance, entries)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to audit account", zap.String("account_ref", ref), zap.Error(err))
		return report, err
	}

	metrics.AccountAudited()
	if report.Violation != nil {
		metrics.AuditViolation()
		zap.L().Error("ledger does not match balance",
			zap.String("account_ref", ref),
			zap.Stringer("balance", report.Balance),
			zap.Int("entries", report.Entries),
			zap.Error(report.Violation))
	}
	return report, nil
}

// Verify checks that entries, oldest first, form an unbroken chain from zero
// to balance. It returns nil or an error wrapping domain.ErrInvariantViolation.
func Verify(balance money.Amount, entries []domain.LedgerEntry) error {
	var (
		running money.Amount
		lastSeq int64
		lastAt  time.Time
	)
	for _, e := range entries {
		switch {
		case !e.Type.Valid():
			return violation(e, "unknown entry type %q", e.Type)
		case !e.Amount.Valid():
			return violation(e, "amount %d out of range", int64(e.Amount))
		case e.Seq <= lastSeq:
			return violation(e, "sequence not increasing after %d", lastSeq)
		case e.CreatedAt.Before(lastAt):
			return violation(e, "timestamp earlier than previous entry")
		case e.BalanceBefore != running:
			return violation(e, "balance before %s, expected %s", e.BalanceBefore, running)
		}

		next := int64(running) + e.Type.Sign()*int64(e.Amount)
		if next < 0 || next > int64(money.Max) {
			return violation(e, "balance leaves range")
		}
		if e.BalanceAfter != money.Amount(next) {
			return violation(e, "balance after %s, expected %s", e.BalanceAfter, money.Amount(next))
		}
		running, lastSeq, lastAt = e.BalanceAfter, e.Seq, e.CreatedAt
	}
	if running != balance {
		return fmt.Errorf("%w: ledger ends at %s, stored balance is %s", domain.ErrInvariantViolation, running, balance)
	}
	return nil
}

func violation(e domain.LedgerEntry, format string, args ...any) error {
	return fmt.Errorf("%w: entry %d: %s", domain.ErrInvariantViolation, e.Seq, fmt.Sprintf(format, args...))
}

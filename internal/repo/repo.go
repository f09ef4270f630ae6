package repo

import (
	"github.com/GlebRadaev/funcoin/internal/audit"
	"github.com/GlebRadaev/funcoin/internal/pg"
	accountrepo "github.com/GlebRadaev/funcoin/internal/repo/account-repo"
	ledgerrepo "github.com/GlebRadaev/funcoin/internal/repo/ledger-repo"
	"github.com/GlebRadaev/funcoin/internal/repo/memory"
	redemptionrepo "github.com/GlebRadaev/funcoin/internal/repo/redemption-repo"
	voucherrepo "github.com/GlebRadaev/funcoin/internal/repo/voucher-repo"
	"github.com/GlebRadaev/funcoin/internal/service/ledgerservice"
	"github.com/GlebRadaev/funcoin/internal/service/voucherservice"
)

// Repositories exposes one storage backend through the interfaces each
// consumer declares. The same concrete repository often backs several fields.
type Repositories struct {
	Accounts      ledgerservice.AccountRepo
	Ledger        ledgerservice.LedgerRepo
	Vouchers      voucherservice.Repo
	VoucherLocks  ledgerservice.VoucherRepo
	Redemptions   ledgerservice.RedemptionRepo
	AuditAccounts audit.AccountRepo
	AuditLedger   audit.LedgerRepo
	TXManager     pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	voucherRepo := voucherrepo.New(conn)
	redemptionRepo := redemptionrepo.New(conn)

	return &Repositories{
		Accounts:      accountRepo,
		Ledger:        ledgerRepo,
		Vouchers:      voucherRepo,
		VoucherLocks:  voucherRepo,
		Redemptions:   redemptionRepo,
		AuditAccounts: accountRepo,
		AuditLedger:   ledgerRepo,
		TXManager:     txManager,
	}
}

// NewInMemory backs every repository with store, which also serves as the
// transaction manager.
func NewInMemory(store *memory.Store) *Repositories {
	accountRepo := store.Accounts()
	ledgerRepo := store.Ledger()
	voucherRepo := store.Vouchers()

	return &Repositories{
		Accounts:      accountRepo,
		Ledger:        ledgerRepo,
		Vouchers:      voucherRepo,
		VoucherLocks:  voucherRepo,
		Redemptions:   store.Redemptions(),
		AuditAccounts: accountRepo,
		AuditLedger:   ledgerRepo,
		TXManager:     store,
	}
}

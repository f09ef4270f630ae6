package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/funcoin/internal/pg"
	accountrepo "github.com/GlebRadaev/funcoin/internal/repo/account-repo"
	ledgerrepo "github.com/GlebRadaev/funcoin/internal/repo/ledger-repo"
	"github.com/GlebRadaev/funcoin/internal/repo/memory"
	redemptionrepo "github.com/GlebRadaev/funcoin/internal/repo/redemption-repo"
	voucherrepo "github.com/GlebRadaev/funcoin/internal/repo/voucher-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestNew(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	assert.IsType(t, &accountrepo.Repository{}, repo.Accounts)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.Ledger)
	assert.IsType(t, &voucherrepo.Repository{}, repo.Vouchers)
	assert.IsType(t, &redemptionrepo.Repository{}, repo.Redemptions)
	assert.Same(t, repo.Accounts, repo.AuditAccounts)
	assert.Same(t, repo.Ledger, repo.AuditLedger)
	assert.Same(t, repo.Vouchers, repo.VoucherLocks)
	assert.Equal(t, txManager, repo.TXManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewInMemory(t *testing.T) {
	store := memory.New()
	repo := NewInMemory(store)

	assert.IsType(t, &memory.AccountRepo{}, repo.Accounts)
	assert.IsType(t, &memory.LedgerRepo{}, repo.Ledger)
	assert.IsType(t, &memory.VoucherRepo{}, repo.Vouchers)
	assert.IsType(t, &memory.RedemptionRepo{}, repo.Redemptions)
	assert.Same(t, store, repo.TXManager)
}

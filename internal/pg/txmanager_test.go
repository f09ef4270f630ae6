package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/funcoin/internal/domain"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func TestTxManager_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	manager := NewTXManager(mock)
	businessErr := errors.New("business rule")

	tests := []struct {
		name        string
		prepareMock func()
		fn          TransactionalFn
		checkErr    func(t *testing.T, err error)
	}{
		{
			name: "Commit on success",
			prepareMock: func() {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("UPDATE accounts").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context) error {
				tx, ok := txFromContext(ctx)
				require.True(t, ok)
				_, err := tx.Exec(ctx, "UPDATE accounts SET balance = 0")
				return err
			},
			checkErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Rollback and pass business error through",
			prepareMock: func() {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(context.Context) error {
				return businessErr
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, businessErr)
				assert.False(t, domain.IsRetryable(err))
			},
		},
		{
			name: "Serialization failure is transient",
			prepareMock: func() {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(context.Context) error {
				return fmt.Errorf("update: %w", &pgconn.PgError{Code: codeSerializationFailure})
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsRetryable(err))
			},
		},
		{
			name: "Commit failure",
			prepareMock: func() {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: codeDeadlockDetected})
			},
			fn: func(context.Context) error {
				return nil
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsRetryable(err))
			},
		},
		{
			name: "Begin failure",
			prepareMock: func() {
				mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("connection refused"))
			},
			fn: func(context.Context) error {
				t.Fatal("fn must not run")
				return nil
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := manager.Begin(context.Background(), tt.fn)
			tt.checkErr(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_CancelledBeforeCommit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())
	err = NewTXManager(mock).Begin(ctx, func(context.Context) error {
		cancel()
		return nil
	})

	assert.True(t, domain.IsRetryable(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_NestedJoinsOuter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectCommit()

	manager := NewTXManager(mock)
	calls := 0
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_BeginTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := NewMockbeginner(ctrl)
	pool.EXPECT().BeginTx(gomock.Any(), readCommitted).Return(nil, context.DeadlineExceeded)

	err := NewTXManager(pool).Begin(context.Background(), func(context.Context) error { return nil })

	assert.True(t, domain.IsRetryable(err))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Connection{DB: db}, mock
}

func TestRunInTransaction(t *testing.T) {
	errFn := errors.New("falha na escrita")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		fn      func(tx *sql.Tx) error
		wantErr error
	}{
		{
			name: "Commit quando fn termina sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO send_history").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec("INSERT INTO send_history (period) VALUES ('2024-03')")
				return err
			},
		},
		{
			name: "Rollback quando fn falha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:      func(tx *sql.Tx) error { return errFn },
			wantErr: errFn,
		},
		{
			name: "Erro original preservado quando o rollback falha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))
			},
			fn:      func(tx *sql.Tx) error { return errFn },
			wantErr: errFn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := conn.RunInTransaction(context.Background(), tt.fn)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "falha inesperada", func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("falha inesperada")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginError(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool esgotado"))

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		t.Fatal("fn não deveria ser chamada")
		return nil
	})

	assert.ErrorContains(t, err, "erro ao iniciar transação")
	assert.NoError(t, mock.ExpectationsWereMet())
}

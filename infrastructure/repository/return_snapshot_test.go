package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/reminder-return-api/infrastructure/database/postgres"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

var snapshotColumns = []string{
	"id", "period", "sent", "returned", "value_generated", "average_days_to_return", "created_at", "updated_at",
}

func newMockRepository(t *testing.T) (ReturnSnapshotRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewReturnSnapshotRepository(&postgres.Connection{DB: db}), mock
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestReturnSnapshotRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 12, 20, 7, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM return_period_snapshots rs ORDER BY rs.period ASC`).
		WillReturnRows(sqlmock.NewRows(snapshotColumns).
			AddRow("aB3xYz", "2025-11", 10, 2, "350.50", 6.5, now, now).
			AddRow("Qw12Er", "2025-12", 8, 0, "0", nil, now, now))

	snapshots, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, "2025-11", snapshots[0].Period)
	assert.True(t, decimal.RequireFromString("350.5").Equal(snapshots[0].ValueGenerated))
	assert.Equal(t, floatPtr(6.5), snapshots[0].AverageDaysToReturn)
	assert.Nil(t, snapshots[1].AverageDaysToReturn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnSnapshotRepository_GetByPeriod(t *testing.T) {
	t.Run("Período sem snapshot", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM return_period_snapshots rs WHERE rs.period = \$1`).
			WithArgs("2024-01").
			WillReturnRows(sqlmock.NewRows(snapshotColumns))

		snapshot, err := repo.GetByPeriod(context.Background(), "2024-01")
		require.NoError(t, err)
		assert.Nil(t, snapshot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro de banco", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM return_period_snapshots rs`).
			WillReturnError(errors.New("timeout"))

		_, err := repo.GetByPeriod(context.Background(), "2024-01")
		assert.Error(t, err)
	})
}

func TestReturnSnapshotRepository_SaveOrUpdate(t *testing.T) {
	snapshots := func() []*domain.ReturnSnapshot {
		return []*domain.ReturnSnapshot{
			{Period: "2025-11", Sent: 10, Returned: 2, ValueGenerated: decimal.RequireFromString("350.5"), AverageDaysToReturn: floatPtr(6.5)},
			{ID: "fixo01", Period: "2025-12", Sent: 8, ValueGenerated: decimal.Zero},
		}
	}

	t.Run("Grava todos os períodos em uma transação", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO return_period_snapshots (.+) ON CONFLICT \(period\) DO UPDATE`).
			WithArgs(sqlmock.AnyArg(), "2025-11", 10, 2, "350.50", 6.5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO return_period_snapshots`).
			WithArgs("fixo01", "2025-12", 8, 0, "0.00", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		items := snapshots()
		require.NoError(t, repo.SaveOrUpdate(context.Background(), items))
		assert.Len(t, items[0].ID, 21)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback quando um período falha", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO return_period_snapshots`).
			WillReturnError(errors.New("violação de restrição"))
		mock.ExpectRollback()

		err := repo.SaveOrUpdate(context.Background(), snapshots())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lista vazia não abre transação", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		require.NoError(t, repo.SaveOrUpdate(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

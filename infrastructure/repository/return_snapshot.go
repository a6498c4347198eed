// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/reminder-return-api/infrastructure/database/postgres"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/pkg/utils"
)

//go:generate mockgen -source=return_snapshot.go -destination=mocks/return_snapshot_mock.go -package=mocks

const (
	returnSnapshotsTable = "return_period_snapshots rs"
)

type ReturnSnapshotRepository interface {
	GetByPeriod(ctx context.Context, period string) (*domain.ReturnSnapshot, error)
	List(ctx context.Context) ([]*domain.ReturnSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshots []*domain.ReturnSnapshot) error
}

type returnSnapshotRepository struct {
	conn postgres.Conn
}

func NewReturnSnapshotRepository(conn postgres.Conn) ReturnSnapshotRepository {
	return &returnSnapshotRepository{
		conn: conn,
	}
}

func selectSnapshots() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"rs.id",
			"rs.period",
			"rs.sent",
			"rs.returned",
			"rs.value_generated",
			"rs.average_days_to_return",
			"rs.created_at",
			"rs.updated_at",
		).
		From(returnSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *returnSnapshotRepository) GetByPeriod(ctx context.Context, period string) (*domain.ReturnSnapshot, error) {
	query, args, err := selectSnapshots().
		Where(squirrel.Eq{"rs.period": period}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *returnSnapshotRepository) List(ctx context.Context) ([]*domain.ReturnSnapshot, error) {
	query, args, err := selectSnapshots().
		OrderBy("rs.period ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ReturnSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// SaveOrUpdate grava os snapshots em uma única transação, um por período
func (r *returnSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.ReturnSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			if snapshot.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
				}
				snapshot.ID = id
			}

			var averageDays sql.NullFloat64
			if snapshot.AverageDaysToReturn != nil {
				averageDays = sql.NullFloat64{Float64: *snapshot.AverageDaysToReturn, Valid: true}
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("return_period_snapshots").
				Columns("id", "period", "sent", "returned", "value_generated", "average_days_to_return").
				Values(
					snapshot.ID,
					snapshot.Period,
					snapshot.Sent,
					snapshot.Returned,
					snapshot.ValueGenerated.StringFixed(2),
					averageDays,
				).
				Suffix(`
					ON CONFLICT (period) DO UPDATE SET
						sent = EXCLUDED.sent,
						returned = EXCLUDED.returned,
						value_generated = EXCLUDED.value_generated,
						average_days_to_return = EXCLUDED.average_days_to_return,
						updated_at = NOW()`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao salvar snapshot do período %s: %w", snapshot.Period, err)
			}
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.ReturnSnapshot, error) {
	var (
		snapshot       domain.ReturnSnapshot
		valueGenerated string
		averageDays    sql.NullFloat64
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Period,
		&snapshot.Sent,
		&snapshot.Returned,
		&valueGenerated,
		&averageDays,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.ValueGenerated, err = decimal.NewFromString(valueGenerated)
	if err != nil {
		return nil, fmt.Errorf("valor gerado inválido %q: %w", valueGenerated, err)
	}

	if averageDays.Valid {
		days := averageDays.Float64
		snapshot.AverageDaysToReturn = &days
	}

	return &snapshot, nil
}

package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/infrastructure/database/postgres"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

const sendHistoryTable = "send_history"

// PostgresLoader lê o histórico da tabela send_history, na ordem de inserção
type PostgresLoader struct {
	conn postgres.Queryer
}

func NewPostgresLoader(conn postgres.Queryer) *PostgresLoader {
	return &PostgresLoader{conn: conn}
}

func (l *PostgresLoader) Source() string {
	return "postgres:" + sendHistoryTable
}

func (l *PostgresLoader) LoadHistory(ctx context.Context) (*domain.SendHistory, error) {
	query, args, err := squirrel.
		Select("period", "plate", "customer_name", "phone", "sent_at").
		From(sendHistoryTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := l.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	history := domain.NewSendHistory()
	for rows.Next() {
		var (
			event               domain.SendEvent
			customerName, phone sql.NullString
		)
		if err := rows.Scan(&event.Period, &event.Identifier, &customerName, &phone, &event.SentAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear envio: %w", err)
		}
		event.CustomerName = customerName.String
		event.Phone = phone.String
		history.Add(event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	logrus.WithField("events", history.Len()).Debug("Histórico de envios carregado do banco")

	return history, nil
}

// Import grava os envios do histórico, atualizando placas já existentes no período
func Import(ctx context.Context, conn postgres.Conn, history *domain.SendHistory) (int, error) {
	events := history.Events()
	if len(events) == 0 {
		return 0, nil
	}

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, event := range events {
			query, args, err := squirrel.
				Insert(sendHistoryTable).
				Columns("period", "plate", "customer_name", "phone", "sent_at").
				Values(event.Period, event.Identifier, event.CustomerName, event.Phone, event.SentAt).
				Suffix(`ON CONFLICT (period, plate) DO UPDATE SET
					customer_name = EXCLUDED.customer_name,
					phone = EXCLUDED.phone,
					sent_at = EXCLUDED.sent_at`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao gravar envio %s/%s: %w", event.Period, event.Identifier, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(events), nil
}

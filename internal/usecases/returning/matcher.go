package returning

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Matcher cruza os envios do histórico com as vendas da loja.
//
// A placa é procurada como substring (sem diferenciar maiúsculas) nas colunas
// de identificação e observação. Uma placa contida em outra maior ("ABC1" em
// "ABC123") também casa (limitação conhecida).
type Matcher struct {
	workers int
}

// NewMatcher cria o matcher. Com workers <= 1 a análise é sequencial.
func NewMatcher(workers int) *Matcher {
	if workers < 1 {
		workers = 1
	}
	return &Matcher{workers: workers}
}

// preparedSale guarda uma venda já normalizada para a varredura
type preparedSale struct {
	identification    string
	observation       string
	hasIdentification bool
	hasObservation    bool
	issuedAt          time.Time
	hasIssuedAt       bool
	amount            decimal.Decimal
}

func (s preparedSale) matches(identifier string) bool {
	return (s.hasIdentification && strings.Contains(s.identification, identifier)) ||
		(s.hasObservation && strings.Contains(s.observation, identifier))
}

func prepareSales(sales []domain.SaleRecord) []preparedSale {
	prepared := make([]preparedSale, len(sales))
	for i, sale := range sales {
		p := preparedSale{}
		if sale.Identification != nil {
			p.identification = strings.ToUpper(*sale.Identification)
			p.hasIdentification = true
		}
		if sale.Observation != nil {
			p.observation = strings.ToUpper(*sale.Observation)
			p.hasObservation = true
		}
		p.issuedAt, p.hasIssuedAt = ParseIssueDate(sale.IssuedAt)
		p.amount, _ = ParseValue(sale.TotalAmount)
		prepared[i] = p
	}
	return prepared
}

// Analyze gera um AnalysisRecord por envio, na ordem (período, placa) do histórico.
// Envios com data de envio ilegível são descartados sem erro.
func (m *Matcher) Analyze(ctx context.Context, history *domain.SendHistory, sales []domain.SaleRecord) ([]domain.AnalysisRecord, error) {
	events := history.Events()
	if len(events) == 0 {
		return []domain.AnalysisRecord{}, nil
	}

	ledger := prepareSales(sales)
	results := make([]*domain.AnalysisRecord, len(events))

	if m.workers == 1 {
		for i, event := range events {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = matchEvent(event, ledger)
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(m.workers)

		for i, event := range events {
			if gCtx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[i] = matchEvent(event, ledger)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	records := make([]domain.AnalysisRecord, 0, len(events))
	for _, record := range results {
		if record != nil {
			records = append(records, *record)
		}
	}

	return records, nil
}

func matchEvent(event domain.SendEvent, ledger []preparedSale) *domain.AnalysisRecord {
	sentAt, ok := ParseSentAt(event.SentAt)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"period":     event.Period,
			"identifier": event.Identifier,
			"sent_at":    event.SentAt,
		}).Debug("Envio ignorado: data de envio inválida")
		return nil
	}

	identifier := strings.ToUpper(event.Identifier)

	var (
		returnCount int
		total       = decimal.Zero
		firstReturn time.Time
	)

	for _, sale := range ledger {
		if !sale.matches(identifier) {
			continue
		}

		// Vendas no mesmo instante ou antes do envio não contam como retorno
		if !sale.hasIssuedAt || !sale.issuedAt.After(sentAt) {
			continue
		}

		if returnCount == 0 || sale.issuedAt.Before(firstReturn) {
			firstReturn = sale.issuedAt
		}
		returnCount++
		total = total.Add(sale.amount)
	}

	record := &domain.AnalysisRecord{
		Period:              event.Period,
		Identifier:          event.Identifier,
		CustomerName:        event.CustomerName,
		Phone:               event.Phone,
		SentAt:              sentAt,
		Returned:            returnCount > 0,
		ReturnCount:         returnCount,
		TotalValueGenerated: total,
	}

	if record.Returned {
		days := daysBetween(sentAt, firstReturn)
		record.DaysToFirstReturn = &days
	}

	return record
}

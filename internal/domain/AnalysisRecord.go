package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisRecord é o resultado da análise de retorno de um envio
type AnalysisRecord struct {
	Period              string          `json:"period"`
	Identifier          string          `json:"identifier"`
	CustomerName        string          `json:"customer_name"`
	Phone               string          `json:"phone"`
	SentAt              time.Time       `json:"sent_at"`
	Returned            bool            `json:"returned"`
	ReturnCount         int             `json:"return_count"`
	TotalValueGenerated decimal.Decimal `json:"total_value_generated"`
	DaysToFirstReturn   *int            `json:"days_to_first_return"` // nil quando o cliente não retornou
}

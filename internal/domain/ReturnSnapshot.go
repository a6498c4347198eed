package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnSnapshot representa o consolidado de um período armazenado no banco
type ReturnSnapshot struct {
	ID                  string          `json:"id"`
	Period              string          `json:"period"`
	Sent                int             `json:"sent"`
	Returned            int             `json:"returned"`
	ValueGenerated      decimal.Decimal `json:"value_generated"`
	AverageDaysToReturn *float64        `json:"average_days_to_return"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

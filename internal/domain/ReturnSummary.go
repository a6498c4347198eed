package domain

import "github.com/shopspring/decimal"

// ReturnSummary consolida os registros de análise para o relatório
type ReturnSummary struct {
	TotalSent             int               `json:"total_sent"`
	TotalReturned         int               `json:"total_returned"`
	ReturnRate            float64           `json:"return_rate"` // percentual
	TotalValueGenerated   decimal.Decimal   `json:"total_value_generated"`
	AverageDaysToReturn   *float64          `json:"average_days_to_return"` // nil quando ninguém retornou
	AverageValuePerReturn decimal.Decimal   `json:"average_value_per_return"`
	ValuePerMessage       decimal.Decimal   `json:"value_per_message"`
	Periods               []PeriodSummary   `json:"periods"`
	Executive             *ExecutiveSummary `json:"executive,omitempty"`
}

// PeriodSummary é o consolidado de um período de referência
type PeriodSummary struct {
	Period              string          `json:"period"`
	Label               string          `json:"label"` // ex: Dez/2025
	Sent                int             `json:"sent"`
	Returned            int             `json:"returned"`
	ValueGenerated      decimal.Decimal `json:"value_generated"`
	AverageDaysToReturn *float64        `json:"average_days_to_return"`
}

// ExecutiveSummary traz o retorno sobre o investimento das mensagens
type ExecutiveSummary struct {
	CostPerMessage decimal.Decimal `json:"cost_per_message"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	ROI            float64         `json:"roi"` // percentual
	Performing     bool            `json:"performing"`
}

package returning

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/pkg/utils"
)

// PerformingReturnRate é a taxa de retorno (%) a partir da qual consideramos
// que os lembretes estão funcionando bem
const PerformingReturnRate = 5.0

var monthLabels = map[string]string{
	"01": "Jan", "02": "Fev", "03": "Mar", "04": "Abr",
	"05": "Mai", "06": "Jun", "07": "Jul", "08": "Ago",
	"09": "Set", "10": "Out", "11": "Nov", "12": "Dez",
}

// PeriodLabel formata o período para exibição (2025-12 -> Dez/2025)
func PeriodLabel(period string) string {
	parts := strings.Split(period, "-")
	if len(parts) < 2 {
		return period
	}

	month, ok := monthLabels[parts[1]]
	if !ok {
		month = parts[1]
	}
	return month + "/" + parts[0]
}

type accumulator struct {
	sent      int
	returned  int
	value     decimal.Decimal
	daysTotal int
}

func (a *accumulator) add(record domain.AnalysisRecord) {
	a.sent++
	a.value = a.value.Add(record.TotalValueGenerated)
	if record.Returned {
		a.returned++
		if record.DaysToFirstReturn != nil {
			a.daysTotal += *record.DaysToFirstReturn
		}
	}
}

func (a *accumulator) averageDays() *float64 {
	if a.returned == 0 {
		return nil
	}
	avg := float64(a.daysTotal) / float64(a.returned)
	return &avg
}

// Summarize consolida os registros da análise. costPerMessage é o custo
// estimado de cada mensagem enviada, usado no cálculo do ROI.
func Summarize(records []domain.AnalysisRecord, costPerMessage decimal.Decimal) *domain.ReturnSummary {
	total := &accumulator{value: decimal.Zero}
	byPeriod := make(map[string]*accumulator)

	for _, record := range records {
		total.add(record)

		acc, ok := byPeriod[record.Period]
		if !ok {
			acc = &accumulator{value: decimal.Zero}
			byPeriod[record.Period] = acc
		}
		acc.add(record)
	}

	summary := &domain.ReturnSummary{
		TotalSent:             total.sent,
		TotalReturned:         total.returned,
		TotalValueGenerated:   total.value,
		AverageDaysToReturn:   total.averageDays(),
		AverageValuePerReturn: decimal.Zero,
		ValuePerMessage:       decimal.Zero,
		Periods:               make([]domain.PeriodSummary, 0, len(byPeriod)),
	}

	if total.sent > 0 {
		summary.ReturnRate = utils.Percentage(total.returned, total.sent)
		summary.ValuePerMessage = total.value.Div(decimal.NewFromInt(int64(total.sent))).Round(2)
	}

	if total.returned > 0 {
		summary.AverageValuePerReturn = total.value.Div(decimal.NewFromInt(int64(total.returned))).Round(2)
	}

	periods := make([]string, 0, len(byPeriod))
	for period := range byPeriod {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	for _, period := range periods {
		acc := byPeriod[period]
		summary.Periods = append(summary.Periods, domain.PeriodSummary{
			Period:              period,
			Label:               PeriodLabel(period),
			Sent:                acc.sent,
			Returned:            acc.returned,
			ValueGenerated:      acc.value,
			AverageDaysToReturn: acc.averageDays(),
		})
	}

	summary.Executive = executiveSummary(summary, costPerMessage)

	return summary
}

func executiveSummary(summary *domain.ReturnSummary, costPerMessage decimal.Decimal) *domain.ExecutiveSummary {
	cost := costPerMessage.Mul(decimal.NewFromInt(int64(summary.TotalSent)))

	executive := &domain.ExecutiveSummary{
		CostPerMessage: costPerMessage,
		EstimatedCost:  cost,
		Performing:     summary.ReturnRate >= PerformingReturnRate,
	}

	if cost.IsPositive() {
		roi := summary.TotalValueGenerated.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))
		executive.ROI = utils.RoundCents(roi)
	}

	return executive
}

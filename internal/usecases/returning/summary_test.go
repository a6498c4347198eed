package returning

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

func intPtr(i int) *int {
	return &i
}

func analysisRecords() []domain.AnalysisRecord {
	sentAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.AnalysisRecord{
		{
			Period: "2024-04", Identifier: "AAA0001", CustomerName: "Maria Souza", SentAt: sentAt,
			Returned: true, ReturnCount: 1, TotalValueGenerated: decimal.NewFromInt(200), DaysToFirstReturn: intPtr(4),
		},
		{
			Period: "2024-03", Identifier: "BBB0002", CustomerName: "José Lima", SentAt: sentAt,
			Returned: true, ReturnCount: 2, TotalValueGenerated: decimal.RequireFromString("150.5"), DaysToFirstReturn: intPtr(10),
		},
		{
			Period: "2024-03", Identifier: "CCC0003", CustomerName: "Ana Pereira", SentAt: sentAt,
			TotalValueGenerated: decimal.Zero,
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(analysisRecords(), decimal.RequireFromString("0.05"))

	assert.Equal(t, 3, summary.TotalSent)
	assert.Equal(t, 2, summary.TotalReturned)
	assert.Equal(t, 66.67, summary.ReturnRate)
	assert.True(t, decimal.RequireFromString("350.5").Equal(summary.TotalValueGenerated))
	require.NotNil(t, summary.AverageDaysToReturn)
	assert.Equal(t, 7.0, *summary.AverageDaysToReturn)
	assert.True(t, decimal.RequireFromString("175.25").Equal(summary.AverageValuePerReturn))
	assert.True(t, decimal.RequireFromString("116.83").Equal(summary.ValuePerMessage))

	require.Len(t, summary.Periods, 2)
	assert.Equal(t, "2024-03", summary.Periods[0].Period)
	assert.Equal(t, "Mar/2024", summary.Periods[0].Label)
	assert.Equal(t, 2, summary.Periods[0].Sent)
	assert.Equal(t, 1, summary.Periods[0].Returned)
	assert.True(t, decimal.RequireFromString("150.5").Equal(summary.Periods[0].ValueGenerated))
	assert.Equal(t, 10.0, *summary.Periods[0].AverageDaysToReturn)

	assert.Equal(t, "2024-04", summary.Periods[1].Period)
	assert.Equal(t, "Abr/2024", summary.Periods[1].Label)
	assert.Equal(t, 1, summary.Periods[1].Returned)

	require.NotNil(t, summary.Executive)
	assert.True(t, decimal.RequireFromString("0.15").Equal(summary.Executive.EstimatedCost))
	assert.Equal(t, 233566.67, summary.Executive.ROI)
	assert.True(t, summary.Executive.Performing)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, decimal.RequireFromString("0.05"))

	assert.Equal(t, 0, summary.TotalSent)
	assert.Equal(t, 0.0, summary.ReturnRate)
	assert.Nil(t, summary.AverageDaysToReturn)
	assert.True(t, summary.TotalValueGenerated.IsZero())
	assert.True(t, summary.AverageValuePerReturn.IsZero())
	assert.Empty(t, summary.Periods)
	assert.Equal(t, 0.0, summary.Executive.ROI)
	assert.False(t, summary.Executive.Performing)
}

func TestSummarize_NoReturns(t *testing.T) {
	records := analysisRecords()[2:]

	summary := Summarize(records, decimal.Zero)

	assert.Equal(t, 1, summary.TotalSent)
	assert.Nil(t, summary.AverageDaysToReturn)
	assert.Nil(t, summary.Periods[0].AverageDaysToReturn)
	assert.Equal(t, 0.0, summary.Executive.ROI)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Dez/2025", PeriodLabel("2025-12"))
	assert.Equal(t, "Jan/2024", PeriodLabel("2024-01"))
	assert.Equal(t, "13/2024", PeriodLabel("2024-13"))
	assert.Equal(t, "marco", PeriodLabel("marco"))
}

package utils

import "github.com/shopspring/decimal"

// Percentage devolve part/whole em percentual com duas casas; whole zero resulta em 0
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return RoundCents(decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(whole))))
}

// RoundCents arredonda para duas casas decimais
func RoundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

package returning

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

// ParseValue converte o valor de uma venda (número ou texto no formato "R$ 1654,30")
// para decimal. Nunca falha: qualquer valor ilegível vira zero com ok=false.
func ParseValue(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromUint64(uint64(v)), true
	case uint8:
		return decimal.NewFromUint64(uint64(v)), true
	case uint16:
		return decimal.NewFromUint64(uint64(v)), true
	case uint32:
		return decimal.NewFromUint64(uint64(v)), true
	case uint64:
		return decimal.NewFromUint64(v), true
	case float32:
		return parseFloatValue(float64(v))
	case float64:
		return parseFloatValue(v)
	case string:
		return parseValueString(v)
	case *string:
		if v == nil {
			return decimal.Zero, false
		}
		return parseValueString(*v)
	}

	return decimal.Zero, false
}

func parseFloatValue(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func parseValueString(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseIssueDate converte a data de emissão da venda. Aceita texto dd/mm/aaaa
// ou uma data já tipada; qualquer outro formato resulta em ok=false.
func ParseIssueDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseIssueDateString(v)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return parseIssueDateString(*v)
	}

	return time.Time{}, false
}

func parseIssueDateString(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	components := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, false
		}
		components[i] = n
	}

	day, month, year := components[0], components[1], components[2]
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza datas inexistentes (31/02 vira 02/03)
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, false
	}

	return date, true
}

// ParseSentAt lê a data de envio gravada no histórico
func ParseSentAt(s string) (time.Time, bool) {
	sentAt, err := time.Parse(domain.SentAtLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return sentAt, true
}

// daysBetween conta os dias de calendário entre duas datas, usando o fuso de from
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.In(from.Location()).Date()

	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start) / (24 * time.Hour))
}

package returning

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/reminder-return-api/internal/domain"
)

var ErrInvalidFilter = errors.New("filtro inválido")

// ParseReturnStatus valida o status recebido na query string
func ParseReturnStatus(status string) (domain.ReturnStatus, error) {
	switch domain.ReturnStatus(strings.ToLower(strings.TrimSpace(status))) {
	case "", domain.ReturnStatusAll:
		return domain.ReturnStatusAll, nil
	case domain.ReturnStatusReturned:
		return domain.ReturnStatusReturned, nil
	case domain.ReturnStatusNotReturned:
		return domain.ReturnStatusNotReturned, nil
	}

	return "", fmt.Errorf("%w: status %q (aceitos: all, returned, not_returned)", ErrInvalidFilter, status)
}

// Filter aplica os filtros da listagem sem alterar a ordem dos registros
func Filter(records []domain.AnalysisRecord, filters domain.AnalysisFilters) ([]domain.AnalysisRecord, error) {
	status, err := ParseReturnStatus(string(filters.Status))
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filters.Search)

	filtered := make([]domain.AnalysisRecord, 0, len(records))
	for _, record := range records {
		switch status {
		case domain.ReturnStatusReturned:
			if !record.Returned {
				continue
			}
		case domain.ReturnStatusNotReturned:
			if record.Returned {
				continue
			}
		}

		if filters.Period != "" && record.Period != filters.Period {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(record.CustomerName), search) &&
			!strings.Contains(strings.ToLower(record.Identifier), search) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered, nil
}

// AvailablePeriods lista os períodos (yyyy-mm), anos e meses presentes nos registros
func AvailablePeriods(records []domain.AnalysisRecord) *domain.AvailablePeriods {
	periodSet := make(map[string]struct{})
	yearSet := make(map[string]struct{})
	monthSet := make(map[string]struct{})

	for _, record := range records {
		periodSet[record.Period] = struct{}{}

		parts := strings.SplitN(record.Period, "-", 2)
		if len(parts) == 2 {
			yearSet[parts[0]] = struct{}{}
			monthSet[parts[1]] = struct{}{}
		}
	}

	return &domain.AvailablePeriods{
		Periods: sortedKeys(periodSet),
		Years:   sortedKeys(yearSet),
		Months:  sortedKeys(monthSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

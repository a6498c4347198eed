package returning

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/infrastructure/observability"
	"github.com/vfg2006/reminder-return-api/internal/config"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

const (
	sourceHistory = "history"
	sourceSales   = "sales"
)

// Service implementa ReturnAnalyzer lendo as fontes pelos loaders, com cache opcional
type Service struct {
	historyLoader  HistoryLoader
	ledgerLoader   LedgerLoader
	historyCache   SourceCache[*domain.SendHistory]
	salesCache     SourceCache[[]domain.SaleRecord]
	matcher        *Matcher
	metrics        *observability.Metrics
	costPerMessage decimal.Decimal
}

// NewService cria o serviço de análise de retorno
func NewService(
	cfg *config.Config,
	historyLoader HistoryLoader,
	ledgerLoader LedgerLoader,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		historyLoader:  historyLoader,
		ledgerLoader:   ledgerLoader,
		matcher:        NewMatcher(cfg.Analysis.Workers),
		metrics:        metrics,
		costPerMessage: decimal.NewFromFloat(cfg.Analysis.MessageCost),
	}
}

// WithCache habilita o cache das fontes carregadas
func (s *Service) WithCache(
	historyCache SourceCache[*domain.SendHistory],
	salesCache SourceCache[[]domain.SaleRecord],
) *Service {
	s.historyCache = historyCache
	s.salesCache = salesCache
	return s
}

func (s *Service) Analyze(ctx context.Context) ([]domain.AnalysisRecord, error) {
	start := time.Now()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveStage("load", time.Since(start))

	matchStart := time.Now()
	records, err := s.matcher.Analyze(ctx, history, sales)
	if err != nil {
		return nil, fmt.Errorf("erro ao cruzar envios com vendas: %w", err)
	}
	s.metrics.ObserveStage("match", time.Since(matchStart))

	returned := 0
	for _, record := range records {
		if record.Returned {
			returned++
		}
	}
	skipped := history.Len() - len(records)
	s.metrics.RecordAnalysis(len(records), skipped, returned)

	logrus.WithFields(logrus.Fields{
		"events":   history.Len(),
		"sales":    len(sales),
		"analyzed": len(records),
		"skipped":  skipped,
		"returned": returned,
		"duration": time.Since(start).String(),
	}).Info("Análise de retorno concluída")

	return records, nil
}

func (s *Service) ListRecords(ctx context.Context, filters domain.AnalysisFilters) ([]domain.AnalysisRecord, error) {
	// Valida antes de carregar as fontes
	if _, err := ParseReturnStatus(string(filters.Status)); err != nil {
		return nil, err
	}

	records, err := s.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(records, filters)
}

func (s *Service) GetSummary(ctx context.Context, period string) (*domain.ReturnSummary, error) {
	records, err := s.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	if period != "" {
		records, err = Filter(records, domain.AnalysisFilters{Period: period})
		if err != nil {
			return nil, err
		}
	}

	return Summarize(records, s.costPerMessage), nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	records, err := s.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	return AvailablePeriods(records), nil
}

func (s *Service) InvalidateCache() {
	if s.historyCache != nil {
		s.historyCache.Delete(s.historyLoader.Source())
	}
	if s.salesCache != nil {
		s.salesCache.Delete(s.ledgerLoader.Source())
	}
	logrus.Info("Cache das fontes de análise invalidado")
}

func (s *Service) loadHistory(ctx context.Context) (*domain.SendHistory, error) {
	key := s.historyLoader.Source()

	if s.historyCache != nil {
		if history, ok := s.historyCache.Get(key); ok {
			s.metrics.IncrCacheHit(sourceHistory)
			return history, nil
		}
		s.metrics.IncrCacheMiss(sourceHistory)
	}

	history, err := s.historyLoader.LoadHistory(ctx)
	if err != nil {
		s.metrics.IncrSourceError(sourceHistory)
		logrus.WithError(err).WithField("source", key).Error("Erro ao carregar histórico de envios")
		return nil, fmt.Errorf("erro ao carregar histórico de envios: %w", err)
	}

	if history == nil {
		history = domain.NewSendHistory()
	}

	if s.historyCache != nil {
		s.historyCache.Set(key, history)
	}

	return history, nil
}

func (s *Service) loadSales(ctx context.Context) ([]domain.SaleRecord, error) {
	key := s.ledgerLoader.Source()

	if s.salesCache != nil {
		if sales, ok := s.salesCache.Get(key); ok {
			s.metrics.IncrCacheHit(sourceSales)
			return sales, nil
		}
		s.metrics.IncrCacheMiss(sourceSales)
	}

	sales, err := s.ledgerLoader.LoadSales(ctx)
	if err != nil {
		s.metrics.IncrSourceError(sourceSales)
		logrus.WithError(err).WithField("source", key).Error("Erro ao carregar planilha de vendas")
		return nil, fmt.Errorf("erro ao carregar planilha de vendas: %w", err)
	}

	if s.salesCache != nil {
		s.salesCache.Set(key, sales)
	}

	return sales, nil
}

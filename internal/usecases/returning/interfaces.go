package returning

import (
	"context"

	"github.com/vfg2006/reminder-return-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// HistoryLoader carrega o histórico de envios de lembretes
type HistoryLoader interface {
	// LoadHistory lê o histórico. Fonte inexistente resulta em histórico vazio.
	LoadHistory(ctx context.Context) (*domain.SendHistory, error)
	// Source identifica a fonte (caminho absoluto ou tabela) e é a chave do cache
	Source() string
}

// LedgerLoader carrega a planilha de vendas da loja
type LedgerLoader interface {
	// LoadSales lê as vendas. Fonte inexistente resulta em lista vazia.
	LoadSales(ctx context.Context) ([]domain.SaleRecord, error)
	Source() string
}

// SourceCache guarda as fontes já carregadas, indexadas por Source()
type SourceCache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// ReturnAnalyzer é o serviço consumido pela API e pelo agendador
type ReturnAnalyzer interface {
	// Analyze executa a análise completa de retorno
	Analyze(ctx context.Context) ([]domain.AnalysisRecord, error)

	// ListRecords executa a análise e aplica os filtros da listagem
	ListRecords(ctx context.Context, filters domain.AnalysisFilters) ([]domain.AnalysisRecord, error)

	// GetSummary consolida a análise; period vazio considera todos os períodos
	GetSummary(ctx context.Context, period string) (*domain.ReturnSummary, error)

	// GetAvailablePeriods retorna os períodos presentes no histórico analisado
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// InvalidateCache descarta as fontes em cache, forçando nova leitura
	InvalidateCache()
}

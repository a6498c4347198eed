package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics reúne as métricas Prometheus da análise de retorno.
// Os métodos aceitam receptor nil para facilitar os testes.
type Metrics struct {
	Registry *prometheus.Registry

	analysisDuration *prometheus.HistogramVec
	eventsAnalyzed   prometheus.Counter
	eventsSkipped    prometheus.Counter
	returnsFound     prometheus.Counter
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	sourceErrors     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewMetrics cria um registry próprio, evitando registros duplicados em testes
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		analysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "return_analysis_duration_seconds",
				Help:    "Duração das análises de retorno por etapa.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		eventsAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "return_analysis_events_total",
			Help: "Total de envios analisados.",
		}),
		eventsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "return_analysis_events_skipped_total",
			Help: "Total de envios descartados por data de envio inválida.",
		}),
		returnsFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "return_analysis_returns_total",
			Help: "Total de envios com retorno identificado.",
		}),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "return_source_cache_hits_total",
				Help: "Total de leituras de fonte atendidas pelo cache.",
			},
			[]string{"source"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "return_source_cache_misses_total",
				Help: "Total de leituras de fonte que precisaram carregar o arquivo.",
			},
			[]string{"source"},
		),
		sourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "return_source_errors_total",
				Help: "Total de erros ao carregar as fontes.",
			},
			[]string{"source"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP por método e status.",
			},
			[]string{"method", "code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duração das requisições HTTP.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Handler expõe o registry no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.analysisDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordAnalysis registra o resultado de uma execução da análise
func (m *Metrics) RecordAnalysis(analyzed, skipped, returned int) {
	if m == nil {
		return
	}
	m.eventsAnalyzed.Add(float64(analyzed))
	m.eventsSkipped.Add(float64(skipped))
	m.returnsFound.Add(float64(returned))
}

func (m *Metrics) IncrCacheHit(source string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(source).Inc()
}

func (m *Metrics) IncrCacheMiss(source string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(source).Inc()
}

func (m *Metrics) IncrSourceError(source string) {
	if m == nil {
		return
	}
	m.sourceErrors.WithLabelValues(source).Inc()
}

// ObserveRequest registra uma requisição HTTP finalizada
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(d.Seconds())
}

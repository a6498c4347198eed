package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vfg2006/reminder-return-api/infrastructure/report"
	"github.com/vfg2006/reminder-return-api/infrastructure/repository"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
	"github.com/vfg2006/reminder-return-api/pkg/apiErrors"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

// Formatos aceitos pela exportação do relatório
const (
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
)

// O período é a chave usada no histórico (normalmente yyyy-mm), sem formato fixo
const maxPeriodLength = 64

func parsePeriod(r *http.Request) (string, error) {
	period := strings.TrimSpace(r.URL.Query().Get("period"))
	if utf8.RuneCountInString(period) > maxPeriodLength {
		return "", fmt.Errorf("%w: período com mais de %d caracteres", returning.ErrInvalidFilter, maxPeriodLength)
	}
	return period, nil
}

func parseFilters(r *http.Request) (domain.AnalysisFilters, error) {
	period, err := parsePeriod(r)
	if err != nil {
		return domain.AnalysisFilters{}, err
	}

	status, err := returning.ParseReturnStatus(r.URL.Query().Get("status"))
	if err != nil {
		return domain.AnalysisFilters{}, err
	}

	return domain.AnalysisFilters{
		Status: status,
		Period: period,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}, nil
}

// ListReturns devolve os registros de análise filtrados, na ordem do histórico
func ListReturns(service returning.ReturnAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		records, err := service.ListRecords(r.Context(), filters)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"status":  filters.Status,
			"period":  filters.Period,
			"records": len(records),
		}).Info("returns: listagem gerada")

		writeJSON(w, r, http.StatusOK, records)
	})
}

func GetReturnSummary(service returning.ReturnAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := parsePeriod(r)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		summary, err := service.GetSummary(r.Context(), period)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetAvailablePeriods(service returning.ReturnAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	})
}

// ExportReturns gera o relatório filtrado para download
func ExportReturns(service returning.ReturnAnalyzer, format string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		records, err := service.ListRecords(r.Context(), filters)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		// O relatório é montado em memória para não enviar uma resposta pela metade
		var buf bytes.Buffer
		contentType := "text/csv; charset=utf-8"
		switch format {
		case ReportFormatXLSX:
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
			err = report.WriteXLSX(&buf, records)
		default:
			format = ReportFormatCSV
			err = report.WriteCSV(&buf, records)
		}
		if err != nil {
			logger.WithError(err).Error("returns: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			return
		}

		filename := fmt.Sprintf("relatorio_retorno_%s.%s", time.Now().Format("20060102"), format)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("returns: erro ao enviar relatório")
		}
	})
}

// ListReturnSnapshots devolve os consolidados gravados pelo job; repo nil indica banco desabilitado
func ListReturnSnapshots(repo repository.ReturnSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Banco de dados desabilitado", nil)
			return
		}

		period, err := parsePeriod(r)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		if period != "" {
			snapshot, err := repo.GetByPeriod(r.Context(), period)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("returns: erro ao buscar consolidado")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar consolidado", nil)
				return
			}

			snapshots := []*domain.ReturnSnapshot{}
			if snapshot != nil {
				snapshots = append(snapshots, snapshot)
			}
			writeJSON(w, r, http.StatusOK, snapshots)
			return
		}

		snapshots, err := repo.List(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("returns: erro ao listar consolidados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar consolidados", nil)
			return
		}
		if snapshots == nil {
			snapshots = []*domain.ReturnSnapshot{}
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}

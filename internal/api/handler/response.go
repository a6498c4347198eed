package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/reminder-return-api/infrastructure/source/ledger"
	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
	"github.com/vfg2006/reminder-return-api/pkg/apiErrors"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeAnalysisError traduz os erros da análise para o formato da API
func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, returning.ErrInvalidFilter):
		logger.Warn("Filtro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, ledger.ErrMissingColumn):
		logger.Error("Planilha de vendas com estrutura inválida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidSource, err.Error(), nil)
	default:
		logger.Error("Erro ao executar análise de retorno")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar análise de retorno", nil)
	}
}

package handler

import (
	"net/http"

	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

// InvalidateCache força a releitura do histórico e da planilha na próxima análise
func InvalidateCache(service returning.ReturnAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.InvalidateCache()

		log.ForContext(r.Context()).Info("cache: fontes invalidadas")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Cache invalidado com sucesso",
		})
	})
}

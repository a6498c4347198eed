package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/reminder-return-api/pkg/apiErrors"
	"github.com/vfg2006/reminder-return-api/pkg/log"
	"github.com/vfg2006/reminder-return-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReturnSnapshots = "return-snapshots"
	CronJobTypeAll             = "all"
)

// CronJob é implementado pelos agendadores que aceitam disparo manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReturnSnapshotSync CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReturnSnapshots, CronJobTypeAll:
			if services.ReturnSnapshotSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de consolidação de retornos não disponível", nil)
				return
			}
			services.ReturnSnapshotSync.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: return-snapshots, all", nil)
			return
		}

		fields := log.Fields{"type": cronType}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			fields["user_id"] = claims.UserID
		}
		logger.WithFields(fields).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReturnSnapshotSync != nil {
			status[CronJobTypeReturnSnapshots] = services.ReturnSnapshotSync.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}

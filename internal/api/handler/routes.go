package handler

import (
	"net/http"

	"github.com/vfg2006/reminder-return-api/infrastructure/repository"
	"github.com/vfg2006/reminder-return-api/internal/api/handler/router"
	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
	"github.com/vfg2006/reminder-return-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Returns(service returning.ReturnAnalyzer, snapshotRepo repository.ReturnSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/returns/analysis",
			Method:      http.MethodGet,
			Handler:     ListReturns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/returns/summary",
			Method:      http.MethodGet,
			Handler:     GetReturnSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/returns/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/returns/report.csv",
			Method:      http.MethodGet,
			Handler:     ExportReturns(service, ReportFormatCSV),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/returns/report.xlsx",
			Method:      http.MethodGet,
			Handler:     ExportReturns(service, ReportFormatXLSX),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/returns/snapshots",
			Method:      http.MethodGet,
			Handler:     ListReturnSnapshots(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Cache(service returning.ReturnAnalyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

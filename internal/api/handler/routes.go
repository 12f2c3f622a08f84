package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Files(service reporting.ReportService, upload config.Upload) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/files",
			Method:      http.MethodPost,
			Handler:     UploadFile(service, upload.MaxBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/files",
			Method:      http.MethodGet,
			Handler:     ListFiles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/files/:id/reprocess",
			Method:      http.MethodPost,
			Handler:     ReprocessFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/files/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/reports/:id/pdf",
			Method:      http.MethodPost,
			Handler:     GeneratePDF(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/reports/:id/pdf",
			Method:      http.MethodGet,
			Handler:     DownloadPDF(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     DashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

package handler

import (
	"net/http"

	"github.com/adstack/meta-ads-reporter/internal/api/handler/router"
	"github.com/adstack/meta-ads-reporter/internal/scheduler"
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

func Reports(service *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/run",
			Method:  http.MethodPost,
			Handler: RunReport(service),
		},
		{
			Path:    "/v1/reports/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(service),
		},
	}
}

package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/adstack/meta-ads-reporter/internal/scheduler"
	"github.com/adstack/meta-ads-reporter/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunReport triggers a report run outside the cron schedule
func RunReport(service *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReport")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "report sync service not available", nil)
			return
		}

		if !service.TriggerManualRun() {
			apiErrors.WriteError(w, apiErrors.ErrReportRunning, "a report run is already in progress", nil)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		response := map[string]any{
			"message": "report run started",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetReportStatus returns the scheduler state and the last run summary
func GetReportStatus(service *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "report sync service not available", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}

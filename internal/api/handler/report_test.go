package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/internal/scheduler"
	"github.com/adstack/meta-ads-reporter/internal/usecases/reporting/mocks"
)

func TestRunReportWithoutService(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/reports/run", nil)

	RunReport(nil).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_001")
}

func TestRunReportStartsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetaInsighter(ctrl)
	reporter := mocks.NewMockAccountReporter(ctrl)
	mailer := mocks.NewMockMailSender(ctrl)

	listed := make(chan struct{})
	meta.EXPECT().GetAdAccounts().DoAndReturn(func() ([]metadomain.AdAccount, error) {
		close(listed)
		return nil, nil
	})

	cfg := &config.Config{}
	cfg.ReportSync.MaxConcurrentJobs = 1
	service := scheduler.NewReportSyncService(meta, reporter, mailer, cfg)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/reports/run", nil)

	RunReport(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "report run started")

	select {
	case <-listed:
	case <-time.After(2 * time.Second):
		t.Fatal("manual run never listed ad accounts")
	}
}

func TestGetReportStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetaInsighter(ctrl)
	reporter := mocks.NewMockAccountReporter(ctrl)
	mailer := mocks.NewMockMailSender(ctrl)

	cfg := &config.Config{}
	cfg.ReportSync.CronSchedule = "0 7 * * *"
	cfg.ReportSync.DatePreset = "yesterday"
	cfg.ReportSync.MaxConcurrentJobs = 2
	service := scheduler.NewReportSyncService(meta, reporter, mailer, cfg)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil)

	GetReportStatus(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), `"sync_cron":"0 7 * * *"`)
	assert.Contains(t, recorder.Body.String(), `"date_preset":"yesterday"`)
	assert.Contains(t, recorder.Body.String(), `"run_in_progress":false`)
}

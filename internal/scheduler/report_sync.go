package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/internal/domain"
	"github.com/adstack/meta-ads-reporter/internal/usecases/reporting"
	"github.com/adstack/meta-ads-reporter/pkg/utils"
)

// ReportSyncConfig holds the scheduling knobs of the report run
type ReportSyncConfig struct {
	CronSchedule      string
	DatePreset        string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ReportSyncService schedules and executes the full report run: one CSV per
// account with insight rows, then a single email carrying every file written.
type ReportSyncService struct {
	scheduler      *gocron.Scheduler
	config         ReportSyncConfig
	appConfig      *config.Config
	metaService    reporting.MetaInsighter
	reportService  reporting.AccountReporter
	mailer         reporting.MailSender
	runRunning     bool
	runMutex       sync.Mutex
	lastRunSummary *domain.ReportRunSummary
	summaryMutex   sync.Mutex
}

// NewReportSyncService wires the report run scheduler
func NewReportSyncService(
	metaService reporting.MetaInsighter,
	reportService reporting.AccountReporter,
	mailer reporting.MailSender,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:      appConfig.ReportSync.CronSchedule,
		DatePreset:        appConfig.ReportSync.DatePreset,
		MaxConcurrentJobs: appConfig.ReportSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"date_preset":         syncConfig.DatePreset,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("report sync scheduler configuration loaded")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		metaService:   metaService,
		reportService: reportService,
		mailer:        mailer,
		runRunning:    false,
	}
}

// Start registers the cron job and runs the scheduler until ctx is cancelled
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("report sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting report sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAllReports()
	})
	if err != nil {
		return fmt.Errorf("scheduling report sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping report sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runAllReports executes one full run across every ad account
func (s *ReportSyncService) runAllReports() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("report run already in progress, skipping")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	summary := &domain.ReportRunSummary{
		RunID:     runID,
		StartedAt: time.Now(),
		Files:     []string{},
		Errors:    []string{},
	}

	logrus.WithField("run_id", runID).Info("starting report run for all ad accounts")

	accounts, err := s.metaService.GetAdAccounts()
	if err != nil {
		logrus.WithError(err).Error("failed to list ad accounts for report run")
		summary.Errors = append(summary.Errors, err.Error())
		s.finishRun(summary)
		return
	}

	if len(accounts) == 0 {
		logrus.Info("no ad accounts found for report run")
		s.finishRun(summary)
		return
	}

	s.processAccounts(accounts, summary)

	if len(summary.Files) > 0 {
		s.sendReportEmail(summary)
	} else {
		logrus.Info("nothing to email, no report files produced")
	}

	s.finishRun(summary)

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(summary.StartedAt).String(),
		"accounts": summary.AccountsProcessed,
		"files":    summary.FilesWritten,
		"rows":     summary.RowsExported,
		"errors":   len(summary.Errors),
	}).Info("report run completed")
}

// processAccounts fans the accounts out over a bounded worker pool. Each
// account is independent; a failed export never aborts the others.
func (s *ReportSyncService) processAccounts(accounts []metadomain.AdAccount, summary *domain.ReportRunSummary) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, account := range accounts {
		if account.AccountID == "" {
			logrus.WithField("id", account.ID).Warn("ad account without account_id, skipping")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc metadomain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.AccountID,
				"account_name": acc.Name,
			}).Info("processing report for account")

			result, err := s.reportService.GenerateAccountReport(acc)

			mu.Lock()
			defer mu.Unlock()

			summary.AccountsProcessed++

			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": acc.AccountID,
					"error":      err.Error(),
				}).Error("report generation failed for account")
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", acc.AccountID, err.Error()))
				return
			}

			if !result.Written {
				summary.AccountsSkipped++
				return
			}

			summary.FilesWritten++
			summary.RowsExported += result.Rows
			summary.Files = append(summary.Files, result.Path)
		}(account)
	}

	wg.Wait()
}

// sendReportEmail dispatches every written file as one email
func (s *ReportSyncService) sendReportEmail(summary *domain.ReportRunSummary) {
	subject := fmt.Sprintf("%s – %s", s.appConfig.Email.SubjectPrefix, time.Now().Format(time.DateOnly))
	body := "Attached are the latest Meta Ads Data extracts.\n\nRegards,\nMeta Ads Reporter"

	if err := s.mailer.Send(subject, body, summary.Files); err != nil {
		logrus.WithError(err).Error("failed to send report email")
		summary.Errors = append(summary.Errors, fmt.Sprintf("email: %s", err.Error()))
		return
	}

	summary.EmailSent = true
}

func (s *ReportSyncService) finishRun(summary *domain.ReportRunSummary) {
	summary.CompletedAt = time.Now()

	s.summaryMutex.Lock()
	s.lastRunSummary = summary
	s.summaryMutex.Unlock()
}

// TriggerManualRun starts a run outside the cron schedule. Returns false when
// a run is already in progress.
func (s *ReportSyncService) TriggerManualRun() bool {
	s.runMutex.Lock()
	running := s.runRunning
	s.runMutex.Unlock()

	if running {
		logrus.Info("report run already in progress, ignoring manual trigger")
		return false
	}

	logrus.Info("starting manual report run")
	go s.runAllReports()
	return true
}

// GetStatus reports the scheduler configuration and the last run summary
func (s *ReportSyncService) GetStatus() map[string]any {
	s.summaryMutex.Lock()
	lastRun := s.lastRunSummary
	s.summaryMutex.Unlock()

	s.runMutex.Lock()
	running := s.runRunning
	s.runMutex.Unlock()

	return map[string]any{
		"sync_enabled":        s.config.SyncEnabled,
		"sync_cron":           s.config.CronSchedule,
		"date_preset":         s.config.DatePreset,
		"sync_max_concurrent": s.config.MaxConcurrentJobs,
		"run_in_progress":     running,
		"last_run":            lastRun,
	}
}

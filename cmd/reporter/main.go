package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adstack/meta-ads-reporter/infrastructure/exporter"
	"github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta"
	"github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/metaclient"
	"github.com/adstack/meta-ads-reporter/infrastructure/mailer"
	"github.com/adstack/meta-ads-reporter/internal/api"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/internal/scheduler"
	"github.com/adstack/meta-ads-reporter/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	csvExporter := exporter.NewCSVExporter()
	smtpMailer := mailer.New(cfg)

	reportService := reporting.NewService(cfg, metaIntegrator, csvExporter)

	reportSyncService := scheduler.NewReportSyncService(
		metaIntegrator,
		reportService,
		smtpMailer,
		cfg,
	)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the report sync scheduler")
	} else {
		logrus.Info("report sync scheduler started successfully")
	}

	server, err := api.New(cfg, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format before anything else runs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package reporting

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/internal/domain"
)

// Service runs the report pipeline for one account: fetch insights, fetch
// creatives, assemble rows, export the CSV.
type Service struct {
	cfg             *config.Config
	metaService     MetaInsighter
	exporter        ReportExporter
	conversionTypes ActionTypeSet
	now             func() time.Time
}

// NewService creates the report service with the default conversion types.
func NewService(cfg *config.Config, metaService MetaInsighter, exporter ReportExporter) *Service {
	return &Service{
		cfg:             cfg,
		metaService:     metaService,
		exporter:        exporter,
		conversionTypes: DefaultConversionActionTypes,
		now:             time.Now,
	}
}

// WithConversionTypes substitutes the conversion action-type taxonomy.
func (s *Service) WithConversionTypes(types ActionTypeSet) *Service {
	s.conversionTypes = types
	return s
}

// GenerateAccountReport produces one account's CSV. An account without
// insight rows yields ExportResult{Written:false} and no file, which the
// caller logs and skips. A fetch or export failure is returned to the caller
// and must not abort other accounts.
func (s *Service) GenerateAccountReport(account metadomain.AdAccount) (*domain.ExportResult, error) {
	insights, err := s.metaService.GetAdInsights(account.AccountID, s.cfg.ReportSync.DatePreset)
	if err != nil {
		return nil, err
	}

	if len(insights) == 0 {
		logrus.WithFields(logrus.Fields{
			"account_id":   account.AccountID,
			"account_name": account.Name,
		}).Info("report: no insights for account, skipping")
		return &domain.ExportResult{Written: false}, nil
	}

	creatives, err := s.metaService.GetAdCreatives(uniqueAdIDs(insights))
	if err != nil {
		// Best effort: the report still goes out with Unknown creatives
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Warn("report: creative lookup failed, exporting without creative metadata")
		creatives = map[string]*metadomain.AdCreative{}
	}

	report := AssembleReport(insights, creatives, s.conversionTypes)

	path := filepath.Join(s.cfg.ReportSync.OutputDir, s.fileName(account.AccountID))

	result, err := s.exporter.Export(report, path)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// fileName is deterministic per account and generation timestamp so that
// concurrent accounts never collide on the same path.
func (s *Service) fileName(accountID string) string {
	return fmt.Sprintf("meta_ads_data_%s_%s.csv", accountID, s.now().Format("20060102_150405"))
}

// uniqueAdIDs deduplicates the ad ids of the insight rows, preserving first
// encounter order for stable batching.
func uniqueAdIDs(insights []metadomain.AdInsight) []string {
	seen := make(map[string]struct{}, len(insights))
	ids := make([]string, 0, len(insights))
	for i := range insights {
		id := insights[i].AdID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

package reporting

import (
	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporting_mocks.go -package=mocks

// MetaInsighter is the fetch collaborator for the Graph API. Pagination,
// batching and rate limiting live behind this interface; the report pipeline
// only ever sees fully materialized sequences.
type MetaInsighter interface {
	// GetAdAccounts lists the ad accounts the token can access
	GetAdAccounts() ([]metadomain.AdAccount, error)

	// GetAdInsights returns the flattened ad-level insight rows for one account
	GetAdInsights(accountID string, datePreset string) ([]metadomain.AdInsight, error)

	// GetAdCreatives returns creative metadata keyed by ad id
	GetAdCreatives(adIDs []string) (map[string]*metadomain.AdCreative, error)
}

// ReportExporter writes an assembled report to a file
type ReportExporter interface {
	Export(report domain.CreativeReport, path string) (*domain.ExportResult, error)
}

// MailSender delivers the generated report files by email
type MailSender interface {
	Send(subject string, body string, attachments []string) error
}

// AccountReporter produces one account's report file end to end
type AccountReporter interface {
	GenerateAccountReport(account metadomain.AdAccount) (*domain.ExportResult, error)
}

package reporting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/internal/domain"
	"github.com/adstack/meta-ads-reporter/internal/usecases/reporting/mocks"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ReportSync.DatePreset = "today"
	cfg.ReportSync.OutputDir = "reports"
	return cfg
}

func TestGenerateAccountReport(t *testing.T) {
	account := metadomain.AdAccount{AccountID: "123", Name: "Retail"}

	tests := []struct {
		name     string
		setup    func(meta *mocks.MockMetaInsighter, exporter *mocks.MockReportExporter)
		validate func(t *testing.T, result *domain.ExportResult, err error)
	}{
		{
			name: "account without insights skips the export",
			setup: func(meta *mocks.MockMetaInsighter, exporter *mocks.MockReportExporter) {
				meta.EXPECT().GetAdInsights("123", "today").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Written)
			},
		},
		{
			name: "insight fetch failure is returned",
			setup: func(meta *mocks.MockMetaInsighter, exporter *mocks.MockReportExporter) {
				meta.EXPECT().GetAdInsights("123", "today").Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "creative lookup failure still exports the report",
			setup: func(meta *mocks.MockMetaInsighter, exporter *mocks.MockReportExporter) {
				meta.EXPECT().GetAdInsights("123", "today").Return([]metadomain.AdInsight{
					{AdID: "ad1", Spend: "10.00"},
				}, nil)
				meta.EXPECT().GetAdCreatives([]string{"ad1"}).Return(nil, errors.New("batch failed"))
				exporter.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
					func(report domain.CreativeReport, path string) (*domain.ExportResult, error) {
						require.Len(t, report, 1)
						assert.Equal(t, CreativeTypeUnknown, report[0].CreativeType)
						return &domain.ExportResult{Path: path, Rows: 1, Written: true}, nil
					})
			},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Written)
				assert.Equal(t, 1, result.Rows)
			},
		},
		{
			name: "export failure is returned",
			setup: func(meta *mocks.MockMetaInsighter, exporter *mocks.MockReportExporter) {
				meta.EXPECT().GetAdInsights("123", "today").Return([]metadomain.AdInsight{
					{AdID: "ad1"},
				}, nil)
				meta.EXPECT().GetAdCreatives([]string{"ad1"}).Return(map[string]*metadomain.AdCreative{}, nil)
				exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			meta := mocks.NewMockMetaInsighter(ctrl)
			exporter := mocks.NewMockReportExporter(ctrl)
			tt.setup(meta, exporter)

			service := NewService(newTestConfig(), meta, exporter)

			result, err := service.GenerateAccountReport(account)
			tt.validate(t, result, err)
		})
	}
}

func TestGenerateAccountReportFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetaInsighter(ctrl)
	exporter := mocks.NewMockReportExporter(ctrl)

	meta.EXPECT().GetAdInsights("456", "today").Return([]metadomain.AdInsight{{AdID: "ad1"}}, nil)
	meta.EXPECT().GetAdCreatives([]string{"ad1"}).Return(map[string]*metadomain.AdCreative{}, nil)

	var exportedPath string
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
		func(report domain.CreativeReport, path string) (*domain.ExportResult, error) {
			exportedPath = path
			return &domain.ExportResult{Path: path, Written: true}, nil
		})

	service := NewService(newTestConfig(), meta, exporter)
	service.now = func() time.Time {
		return time.Date(2025, 6, 1, 7, 30, 45, 0, time.UTC)
	}

	_, err := service.GenerateAccountReport(metadomain.AdAccount{AccountID: "456"})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("reports", "meta_ads_data_456_20250601_073045.csv"), exportedPath)
}

func TestUniqueAdIDs(t *testing.T) {
	insights := []metadomain.AdInsight{
		{AdID: "a"},
		{AdID: "b"},
		{AdID: "a"},
		{AdID: ""},
		{AdID: "c"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, uniqueAdIDs(insights))
}

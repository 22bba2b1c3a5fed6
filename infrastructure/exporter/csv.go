package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adstack/meta-ads-reporter/internal/domain"
)

// csvHeader is the canonical column order of the report file
var csvHeader = []string{
	"date",
	"campaign_id",
	"campaign_name",
	"adset_id",
	"adset_name",
	"ad_id",
	"ad_name",
	"creative_id",
	"creative_name",
	"creative_type",
	"image_hash",
	"video_id",
	"spend",
	"impressions",
	"clicks",
	"conversions",
	"conversion_value",
	"cpa",
	"roas",
	"ctr",
	"cpm",
}

// CSVExporter serializes assembled reports to comma-delimited UTF-8 files.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export sorts the report by spend descending (stable, ties keep encounter
// order) and writes it to path. An empty report writes nothing and returns
// Written:false, which is a no-op signal rather than an error.
func (e *CSVExporter) Export(report domain.CreativeReport, path string) (*domain.ExportResult, error) {
	if len(report) == 0 {
		return &domain.ExportResult{Written: false}, nil
	}

	sorted := make(domain.CreativeReport, len(report))
	copy(sorted, report)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Spend > sorted[j].Spend
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating report directory for %s", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating report file %s", path)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "writing report header")
	}

	for _, row := range sorted {
		if err := w.Write(formatRow(row)); err != nil {
			return nil, errors.Wrap(err, "writing report row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrapf(err, "flushing report file %s", path)
	}

	result := &domain.ExportResult{
		Path:       path,
		Rows:       len(sorted),
		TotalSpend: sorted.TotalSpend(),
		Written:    true,
	}

	logrus.WithFields(logrus.Fields{
		"path":        result.Path,
		"rows":        result.Rows,
		"total_spend": result.TotalSpend,
	}).Info("report: file saved")

	return result, nil
}

func formatRow(row *domain.CreativeReportRow) []string {
	return []string{
		row.Date,
		row.CampaignID,
		row.CampaignName,
		row.AdsetID,
		row.AdsetName,
		row.AdID,
		row.AdName,
		row.CreativeID,
		row.CreativeName,
		row.CreativeType,
		row.ImageHash,
		row.VideoID,
		formatFloat(row.Spend),
		strconv.Itoa(row.Impressions),
		strconv.Itoa(row.Clicks),
		strconv.Itoa(row.Conversions),
		formatFloat(row.ConversionValue),
		formatFloat(row.CPA),
		formatFloat(row.ROAS),
		formatFloat(row.CTR),
		formatFloat(row.CPM),
	}
}

// formatFloat uses the shortest representation that round-trips, so 50.0
// becomes "50" and 2.5 stays "2.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

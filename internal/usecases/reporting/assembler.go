package reporting

import (
	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/domain"
	"github.com/adstack/meta-ads-reporter/pkg/utils"
)

// BuildRow joins one insight row with its creative metadata and the derived
// metrics. An ad id missing from the creative lookup is not an error; the
// creative columns stay empty and the type falls back to Unknown.
func BuildRow(insight *metadomain.AdInsight, creatives map[string]*metadomain.AdCreative, conversionTypes ActionTypeSet) *domain.CreativeReportRow {
	creative := creatives[insight.AdID]
	metrics := ComputeMetrics(insight, conversionTypes)

	impressions := utils.ParseIntOrZero("impressions", insight.Impressions)
	clicks := utils.ParseIntOrZero("clicks", insight.Clicks)
	spend := utils.ParseFloatOrZero("spend", insight.Spend)

	ctr := 0.0
	cpm := 0.0
	if impressions > 0 {
		ctr = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
		cpm = utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
	}

	row := &domain.CreativeReportRow{
		Date:         insight.DateStart,
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		AdsetID:      insight.AdsetID,
		AdsetName:    insight.AdsetName,
		AdID:         insight.AdID,
		AdName:       insight.AdName,
		CreativeType: ClassifyCreative(creative),

		Spend:       spend,
		Impressions: impressions,
		Clicks:      clicks,

		Conversions:     metrics.Conversions,
		ConversionValue: metrics.ConversionValue,
		CPA:             metrics.CPA,
		ROAS:            metrics.ROAS,
		CTR:             ctr,
		CPM:             cpm,
	}

	if creative != nil {
		row.CreativeID = creative.CreativeID
		row.CreativeName = creative.CreativeName
		row.ImageHash = creative.ImageHash
		row.VideoID = creative.VideoID
	}

	return row
}

// AssembleReport maps BuildRow over every insight row. An empty input yields
// an empty report; the caller decides whether to skip the export.
func AssembleReport(insights []metadomain.AdInsight, creatives map[string]*metadomain.AdCreative, conversionTypes ActionTypeSet) domain.CreativeReport {
	report := make(domain.CreativeReport, 0, len(insights))
	for i := range insights {
		report = append(report, BuildRow(&insights[i], creatives, conversionTypes))
	}
	return report
}

package domain

// DerivedMetrics are the conversion metrics computed from one insight row.
// Never stored on their own; always embedded into a CreativeReportRow.
type DerivedMetrics struct {
	Conversions     int     `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	CPA             float64 `json:"cpa"`
	ROAS            float64 `json:"roas"`
}

// CreativeReportRow is the flattened join of one insight row, its creative
// metadata and the derived metrics. One row per ad per date window.
type CreativeReportRow struct {
	Date         string  `json:"date"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdsetID      string  `json:"adset_id"`
	AdsetName    string  `json:"adset_name"`
	AdID         string  `json:"ad_id"`
	AdName       string  `json:"ad_name"`
	CreativeID   string  `json:"creative_id"`
	CreativeName string  `json:"creative_name"`
	CreativeType string  `json:"creative_type"`
	ImageHash    string  `json:"image_hash"`
	VideoID      string  `json:"video_id"`
	Spend        float64 `json:"spend"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Conversions  int     `json:"conversions"`

	ConversionValue float64 `json:"conversion_value"`
	CPA             float64 `json:"cpa"`
	ROAS            float64 `json:"roas"`
	CTR             float64 `json:"ctr"`
	CPM             float64 `json:"cpm"`
}

// CreativeReport is the ordered set of rows for one account and run. Built
// fresh per run, exported once, then discarded.
type CreativeReport []*CreativeReportRow

// TotalSpend sums spend across all rows.
func (r CreativeReport) TotalSpend() float64 {
	total := 0.0
	for _, row := range r {
		total += row.Spend
	}
	return total
}

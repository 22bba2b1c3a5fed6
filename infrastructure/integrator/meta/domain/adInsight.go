package metadomain

// Action is one entry of the actions / action_values lists returned by the
// insights endpoint. Values always arrive as numeric strings.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight is one ad's performance for one date window, exactly as the
// Graph API returns it. Numeric fields stay as strings until the report
// pipeline parses them with defaulting.
type AdInsight struct {
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdsetID      string   `json:"adset_id"`
	AdsetName    string   `json:"adset_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

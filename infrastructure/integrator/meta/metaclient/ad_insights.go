package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

const insightFields = "date_start,account_id,campaign_id,campaign_name," +
	"adset_id,adset_name,ad_id,ad_name,impressions,clicks,spend," +
	"actions,action_values"

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsights fetches ad-level insights for one account and date preset,
// following paging.next until the result set is exhausted. The returned slice
// is the flattened sequence across all pages.
func (c *MetaClient) GetAdInsights(accountID string, datePreset string) ([]metadomain.AdInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("level", "ad")
	params.Add("date_preset", datePreset)
	params.Add("fields", insightFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	// The next URL already carries the access token and cursor
	nextURL := baseURL + "?" + params.Encode()

	allInsights := make([]metadomain.AdInsight, 0)
	for nextURL != "" {
		body, err := c.get(nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseAdInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("meta: error decoding insights JSON")
			return nil, err
		}

		allInsights = append(allInsights, response.Data...)

		nextURL = response.Paging.Next
		if nextURL != "" {
			c.requestDelay()
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"rows":       len(allInsights),
	}).Debug("meta: retrieved insight rows")

	return allInsights, nil
}

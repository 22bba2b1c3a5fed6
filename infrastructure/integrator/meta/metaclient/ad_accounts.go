package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdAccounts lists the ad accounts the configured token can access.
func (c *MetaClient) GetAdAccounts() ([]metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "name,account_id,currency,timezone_id")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: error decoding ad accounts JSON")
		return nil, err
	}

	return response.Data, nil
}

package metaclient

import (
	"encoding/json"
	"net/url"
	"strings"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// creativeBatchSize is the Graph API limit for one ?ids=... lookup
const creativeBatchSize = 50

const creativeFields = "id,name," +
	"creative.fields(id,name,object_story_spec,asset_feed_spec," +
	"image_hash,video_id,thumbnail_url)"

// GetAdCreativesByAdIDs looks up creative details for the given ad ids in
// batches of 50. A failed batch is logged and skipped so one bad batch does
// not lose the whole lookup.
func (c *MetaClient) GetAdCreativesByAdIDs(adIDs []string) (map[string]metadomain.AdNode, error) {
	out := make(map[string]metadomain.AdNode, len(adIDs))

	for start := 0; start < len(adIDs); start += creativeBatchSize {
		end := start + creativeBatchSize
		if end > len(adIDs) {
			end = len(adIDs)
		}

		params := url.Values{}
		params.Add("ids", strings.Join(adIDs[start:end], ","))
		params.Add("fields", creativeFields)
		params.Add("access_token", c.Cfg.Meta.AccessToken)

		body, err := c.get(c.Cfg.Meta.URL + "/?" + params.Encode())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"batch_start": start,
				"batch_size":  end - start,
				"error":       err.Error(),
			}).Error("meta: creative details batch failed")
			continue
		}

		var batch map[string]metadomain.AdNode
		if err := json.Unmarshal(body, &batch); err != nil {
			logrus.WithError(err).Error("meta: error decoding creative details JSON")
			continue
		}

		for adID, node := range batch {
			out[adID] = node
		}

		c.requestDelay()
	}

	return out, nil
}

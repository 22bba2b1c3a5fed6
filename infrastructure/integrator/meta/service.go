package meta

import (
	"github.com/sirupsen/logrus"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/metaclient"
	"github.com/adstack/meta-ads-reporter/internal/config"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdAccounts returns the ad accounts visible to the configured token.
func (s *MetaIntegrator) GetAdAccounts() ([]metadomain.AdAccount, error) {
	accounts, err := s.Client.GetAdAccounts()
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list ad accounts from API")
		return nil, err
	}

	logrus.WithField("total_accounts", len(accounts)).Info("insights: successfully retrieved ad accounts")

	return accounts, nil
}

// GetAdInsights returns the fully paginated ad-level insight rows for one
// account. An empty slice is a valid result, not an error.
func (s *MetaIntegrator) GetAdInsights(accountID string, datePreset string) ([]metadomain.AdInsight, error) {
	insights, err := s.Client.GetAdInsights(accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"rows":       len(insights),
	}).Info("insights: retrieved insight rows for account")

	return insights, nil
}

// GetAdCreatives returns the creative metadata lookup keyed by ad id. Ads
// without a creative object are left out of the map; downstream handles the
// absence by classifying the creative as Unknown.
func (s *MetaIntegrator) GetAdCreatives(adIDs []string) (map[string]*metadomain.AdCreative, error) {
	nodes, err := s.Client.GetAdCreativesByAdIDs(adIDs)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get creative details from API")
		return nil, err
	}

	creatives := make(map[string]*metadomain.AdCreative, len(nodes))
	for adID, node := range nodes {
		if node.Creative == nil {
			continue
		}
		creatives[adID] = FactoryAdCreative(node.Creative)
	}

	logrus.WithFields(logrus.Fields{
		"requested": len(adIDs),
		"resolved":  len(creatives),
	}).Debug("insights: creative details resolved")

	return creatives, nil
}

// FactoryAdCreative converts the raw creative node into the processed
// metadata, deriving the media flags from field presence. A video id wins
// over an image hash when both are set.
func FactoryAdCreative(node *metadomain.CreativeNode) *metadomain.AdCreative {
	return &metadomain.AdCreative{
		CreativeID:   node.ID,
		CreativeName: node.Name,
		ImageHash:    node.ImageHash,
		VideoID:      node.VideoID,
		ThumbnailURL: node.ThumbnailURL,
		HasVideo:     node.VideoID != "",
		HasImage:     node.ImageHash != "",
	}
}

package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Client interface {
	GetAdAccounts() ([]metadomain.AdAccount, error)
	GetAdInsights(accountID string, datePreset string) ([]metadomain.AdInsight, error)
	GetAdCreativesByAdIDs(adIDs []string) (map[string]metadomain.AdNode, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// get performs one GET against the Graph API and decodes the error envelope
// on failure. A single attempt only; retrying is up to the caller's schedule.
func (c *MetaClient) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: error creating request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: error performing request")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse reads the body and converts Graph API error envelopes into
// Go errors, flagging expired tokens explicitly.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading graph api response")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != 0 {
		if errResp.IsTokenExpired() {
			logrus.WithFields(logrus.Fields{
				"code":       errResp.Error.Code,
				"subcode":    errResp.Error.ErrorSubcode,
				"fbtrace_id": errResp.Error.FBTraceID,
			}).Error("meta: access token expired, a new token must be configured")
		}
		return nil, errors.New(errResp.String())
	}

	return nil, errors.Errorf("graph api request failed with status %s", resp.Status)
}

// requestDelay pauses between consecutive Graph API calls to stay clear of
// rate limits.
func (c *MetaClient) requestDelay() {
	delay := c.Cfg.ReportSync.RequestDelayMillis
	if delay <= 0 {
		return
	}
	time.Sleep(time.Duration(delay) * time.Millisecond)
}

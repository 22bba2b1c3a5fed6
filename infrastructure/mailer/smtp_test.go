package mailer

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstack/meta-ads-reporter/internal/config"
)

func newMailerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 587
	cfg.SMTP.Sender = "reports@example.com"
	cfg.Email.Recipients = []string{"alice@example.com", "bob@example.com"}
	return cfg
}

func TestBuildMessage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta_ads_data_123_20250601_073045.csv")
	content := []byte("date,spend\n2025-06-01,50\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	mailer := New(newMailerConfig())

	msg, attached := mailer.buildMessage("Daily Meta Ads Report", "See attached.", []string{path})
	raw := string(msg)

	assert.Equal(t, 1, attached)
	assert.Contains(t, raw, "From: reports@example.com\r\n")
	assert.Contains(t, raw, "To: alice@example.com, bob@example.com\r\n")
	assert.Contains(t, raw, "Subject: Daily Meta Ads Report\r\n")
	assert.Contains(t, raw, "Content-Type: multipart/mixed; boundary=\"=_meta_ads_")
	assert.Contains(t, raw, "See attached.")
	assert.Contains(t, raw, "Content-Type: text/csv; name=\"meta_ads_data_123_20250601_073045.csv\"")
	assert.Contains(t, raw, "Content-Disposition: attachment; filename=\"meta_ads_data_123_20250601_073045.csv\"")
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(content))
	assert.True(t, strings.HasSuffix(raw, "--\r\n"))
}

func TestBuildMessageSkipsMissingAttachments(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(present, []byte("a,b\n"), 0o644))
	missing := filepath.Join(dir, "missing.csv")

	mailer := New(newMailerConfig())

	msg, attached := mailer.buildMessage("subject", "body", []string{missing, present})
	raw := string(msg)

	assert.Equal(t, 1, attached)
	assert.Contains(t, raw, "present.csv")
	assert.NotContains(t, raw, "missing.csv")
}

func TestBuildMessageWrapsLongAttachments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 600)), 0o644))

	mailer := New(newMailerConfig())

	msg, _ := mailer.buildMessage("subject", "body", []string{path})

	for _, line := range strings.Split(string(msg), "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
}

func TestSendWithoutRecipients(t *testing.T) {
	cfg := newMailerConfig()
	cfg.Email.Recipients = nil

	err := New(cfg).Send("subject", "body", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no email recipients")
}

func TestWrapBase64(t *testing.T) {
	encoded := strings.Repeat("A", 80)

	wrapped := wrapBase64(encoded)

	assert.Equal(t, strings.Repeat("A", 76)+"\r\n"+strings.Repeat("A", 4)+"\r\n", wrapped)
}

package mailer

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adstack/meta-ads-reporter/internal/config"
	"github.com/adstack/meta-ads-reporter/pkg/utils"
)

// SMTPMailer delivers report files as CSV attachments over SMTP. Port 465
// uses implicit TLS, anything else negotiates STARTTLS when offered.
type SMTPMailer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send builds one message with all attachments and delivers it to every
// configured recipient in a single SMTP transaction. One attempt only;
// failures surface to the caller, the files stay on disk.
func (m *SMTPMailer) Send(subject string, body string, attachments []string) error {
	if len(m.cfg.Email.Recipients) == 0 {
		return errors.New("no email recipients configured")
	}

	msg, attached := m.buildMessage(subject, body, attachments)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTP.Host, m.cfg.SMTP.Port)
	if err := m.transmit(addr, msg); err != nil {
		return errors.Wrapf(err, "sending report email via %s", addr)
	}

	logrus.WithFields(logrus.Fields{
		"recipients":  strings.Join(m.cfg.Email.Recipients, ", "),
		"attachments": attached,
	}).Info("report: email sent")

	return nil
}

// buildMessage assembles the multipart/mixed MIME payload. Attachment paths
// that no longer exist are skipped, matching the best-effort delivery of the
// rest of the pipeline. Returns the payload and how many files were attached.
func (m *SMTPMailer) buildMessage(subject string, body string, attachments []string) ([]byte, int) {
	boundary := mimeBoundary()

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.SMTP.Sender))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(m.cfg.Email.Recipients, ", ")))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary))
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	attached := 0
	for _, path := range attachments {
		content, err := os.ReadFile(path)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  path,
				"error": err.Error(),
			}).Warn("report: skipping unreadable attachment")
			continue
		}

		buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		buf.WriteString(fmt.Sprintf("Content-Type: text/csv; name=\"%s\"\r\n", filepath.Base(path)))
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		buf.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", filepath.Base(path)))
		buf.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(content)))
		buf.WriteString("\r\n")
		attached++
	}

	buf.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return buf.Bytes(), attached
}

// transmit performs the SMTP transaction against addr.
func (m *SMTPMailer) transmit(addr string, msg []byte) error {
	host := m.cfg.SMTP.Host
	tlsCfg := &tls.Config{ServerName: host}

	var client *smtp.Client
	var err error

	if m.cfg.SMTP.Port == 465 {
		// Implicit TLS (SMTPS)
		conn, dialErr := tls.Dial("tcp", addr, tlsCfg)
		if dialErr != nil {
			return errors.Wrap(dialErr, "SMTPS connect")
		}
		client, err = smtp.NewClient(conn, host)
		if err != nil {
			conn.Close()
			return errors.Wrap(err, "SMTP client")
		}
	} else {
		client, err = smtp.Dial(addr)
		if err != nil {
			return errors.Wrap(err, "SMTP connect")
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsCfg); err != nil {
				client.Close()
				return errors.Wrap(err, "STARTTLS")
			}
		}
	}
	defer client.Close()

	if m.cfg.SMTP.Username != "" && m.cfg.SMTP.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.SMTP.Username, m.cfg.SMTP.Password, host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "SMTP auth")
		}
	}

	if err := client.Mail(m.cfg.SMTP.Sender); err != nil {
		return errors.Wrap(err, "MAIL FROM")
	}
	for _, rcpt := range m.cfg.Email.Recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return errors.Wrapf(err, "RCPT TO %s", rcpt)
		}
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "DATA")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "writing message")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing message")
	}

	return client.Quit()
}

// mimeBoundary builds a boundary unlikely to collide with message content.
func mimeBoundary() string {
	id, err := utils.GenerateID()
	if err != nil {
		id = "report"
	}
	return fmt.Sprintf("=_meta_ads_%s", id)
}

// wrapBase64 folds the encoded payload at 76 columns per RFC 2045.
func wrapBase64(encoded string) string {
	const lineLen = 76

	var b strings.Builder
	for len(encoded) > lineLen {
		b.WriteString(encoded[:lineLen])
		b.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	return b.String()
}

// Package email sends operational alert mail over SMTP.
package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"quartermaster/internal/shared/config"
	"quartermaster/internal/shared/logger"
)

// SMTPAlerter implements the sync.Alerter interface. Alert mail names the
// blocked record by kind and ID plus the matched pattern labels; the record
// content itself is never included.
type SMTPAlerter struct {
	dialer *gomail.Dialer
	from   string
	to     []string
	logger logger.Interface
}

// NewSMTPAlerter creates a new SMTP alerter
func NewSMTPAlerter(cfg *config.AlertsConfig, log logger.Interface) *SMTPAlerter {
	return &SMTPAlerter{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromAddress,
		to:     cfg.ToAddresses,
		logger: log,
	}
}

// GateBlocked notifies operators that a record failed the PII gate
func (a *SMTPAlerter) GateBlocked(_ context.Context, recordKind, recordID string, labels []string) error {
	subject := fmt.Sprintf("[quartermaster] PII gate blocked %s %s", recordKind, recordID)
	body := fmt.Sprintf(`A record was blocked by the PII validation gate during sync.

Record kind: %s
Record ID:   %s
Patterns:    %s

The record was skipped and not persisted. Inspect the scrub transforms for
this record shape before re-running the sync.
`, recordKind, recordID, strings.Join(labels, ", "))

	m := gomail.NewMessage()
	m.SetHeader("From", a.from)
	m.SetHeader("To", a.to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := a.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send gate alert: %w", err)
	}

	a.logger.Infow("gate alert sent",
		"record_kind", recordKind,
		"record_id", recordID,
	)
	return nil
}

package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"vox/internal/shared/config"
)

const defaultSendTimeout = 10 * time.Second

// SMTPEmailService sends notification emails through the configured
// SMTP relay. Each call dials a fresh connection; volume is low enough
// that pooling is not worth the reconnect handling.
type SMTPEmailService struct {
	config  config.EmailConfig
	dialer  *gomail.Dialer
	timeout time.Duration
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	timeout := defaultSendTimeout
	if cfg.SendTimeoutSec > 0 {
		timeout = time.Duration(cfg.SendTimeoutSec) * time.Second
	}

	return &SMTPEmailService{
		config:  cfg,
		dialer:  dialer,
		timeout: timeout,
	}
}

// Send delivers a plain-text notification body, with an HTML
// alternative for clients that render it. It returns when the relay
// accepts the message, the timeout elapses, or ctx is cancelled.
func (s *SMTPEmailService) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p>Sign in to the feedback portal for details.</p>
		</body>
		</html>
	`, html.EscapeString(subject), html.EscapeString(body)))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// gomail has no context support, so the dial runs in a goroutine
	// and the caller is released on timeout. The buffered channel lets
	// a late send finish without leaking the goroutine.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email send timed out: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}

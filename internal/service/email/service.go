package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/resend/resend-go/v3"
	"gopkg.in/mail.v2"

	"gondola-rental/internal/config"
)

const senderName = "Gondola Manager"

var (
	ErrNoRecipient = errors.New("recipient address is empty")
	ErrSendTimeout = errors.New("mail send timed out")
)

// Mailer delivers one HTML email to one address.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// NewService picks the Resend API when RESEND_API_KEY is set and SMTP
// otherwise. Every send is bounded by MAIL_SEND_TIMEOUT.
func NewService(cfg *config.Config) Mailer {
	var m Mailer
	if cfg.ResendAPIKey != "" {
		m = NewResendMailer(cfg.ResendAPIKey, cfg.SMTPFrom)
	} else {
		m = NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.MailSendTimeout)
	}
	return WithTimeout(m, cfg.MailSendTimeout)
}

type smtpMailer struct {
	dialer *mail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string, timeout time.Duration) Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	if timeout > 0 {
		dialer.Timeout = timeout
	}
	return &smtpMailer{dialer: dialer, from: from}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, html string) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}

	message := mail.NewMessage()
	message.SetAddressHeader("From", m.from, senderName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}
	return nil
}

type resendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) Mailer {
	return &resendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *resendMailer) Send(ctx context.Context, to, subject, html string) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", senderName, m.from),
		To:      []string{to},
		Html:    html,
		Subject: subject,
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email via resend: %w", err)
	}
	return nil
}

type timeoutMailer struct {
	next    Mailer
	timeout time.Duration
}

// WithTimeout bounds each send so an unreachable transport cannot stall a
// batch. A non-positive timeout returns next unchanged.
func WithTimeout(next Mailer, timeout time.Duration) Mailer {
	if timeout <= 0 {
		return next
	}
	return &timeoutMailer{next: next, timeout: timeout}
}

func (m *timeoutMailer) Send(ctx context.Context, to, subject, html string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.next.Send(ctx, to, subject, html)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s to %s", ErrSendTimeout, m.timeout, to)
		}
		return ctx.Err()
	}
}

package service

import (
	"context"
	"io"

	"gopkg.in/gomail.v2"

	"lionreport/internal/config"
)

// MailMessage is an outbound email with a single binary attachment.
type MailMessage struct {
	To             []string
	Subject        string
	Body           string
	AttachmentName string
	AttachmentMIME string
	Attachment     []byte
}

// Mailer sends mail. It is an interface so the dispatcher can be tested
// against a fake transport.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// SMTPMailer sends mail over SMTP via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers the message. gomail has no context support, so the dial
// and send run in a goroutine and the context bounds the wait.
func (m *SMTPMailer) Send(ctx context.Context, msg *MailMessage) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	if msg.AttachmentName != "" {
		gm.Attach(msg.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(msg.Attachment)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {msg.AttachmentMIME},
			}),
		)
	}

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

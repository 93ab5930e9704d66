package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender implements Sender over plain SMTP
type SMTPSender struct {
	config Config
	auth   smtp.Auth
}

// NewSMTPSender creates a new SMTP-backed sender
func NewSMTPSender(config Config) *SMTPSender {
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return &SMTPSender{
		config: config,
		auth:   auth,
	}
}

// Send delivers a plain-text message to a single recipient
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	if err := smtp.SendMail(addr, s.auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPasswordResetEmail delivers the reset link for a freshly issued token
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	resetLink := s.config.ResetPasswordURL + token
	body := "You requested a password reset. Click the link to reset your password: " + resetLink
	return s.Send(ctx, to, "Password Reset Request", body)
}

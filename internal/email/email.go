package email

import "context"

// Sender dispatches outbound mail. Delivery failures surface as errors to the
// caller; there are no retries at this layer.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// Config holds SMTP transport and template settings
type Config struct {
	Host             string
	Port             int
	Username         string
	Password         string
	From             string
	ResetPasswordURL string // <web-url>/reset-password?token=
}

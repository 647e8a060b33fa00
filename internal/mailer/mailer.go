package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/sentra-app/auth-server/internal/model"
)

var _ model.OTPDeliverer = (*Mailer)(nil)

// Mailer delivers OTP codes over SMTP. It is the only component that sees
// the plaintext code besides the challenge issuer.
type Mailer struct {
	client    *mail.Client
	fromEmail string
	fromName  string
	otpTTL    time.Duration
}

// NewMailer builds an SMTP mailer with STARTTLS and plain authentication.
func NewMailer(host string, port int, username, password, fromEmail, fromName string, otpTTL time.Duration) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Mailer{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		otpTTL:    otpTTL,
	}, nil
}

// DeliverOTP sends the verification email carrying the plaintext code.
func (m *Mailer) DeliverOTP(ctx context.Context, email, code string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject("Verify your email")
	msg.SetBodyString(mail.TypeTextPlain, otpBody(code, m.otpTTL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

func otpBody(code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"Your verification code is:\n\n%s\n\nThis code expires in %d minutes.\n\nIf you did not request this, please ignore this email.",
		code, int(ttl.Minutes()),
	)
}

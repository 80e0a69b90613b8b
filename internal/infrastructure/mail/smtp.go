package mail

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/streamvault/identity-api/internal/core/ports"
)

// Config captures the SMTP settings for outbound account mail.
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// Mailer delivers account notifications over SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

func NewMailer(cfg Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers a single notification. Callers treat delivery as best
// effort; the returned error is for logging and counting only.
func (m *Mailer) Send(ctx context.Context, n ports.Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.AddToFormat(n.Username, n.Email); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Welcome aboard, %s. Your account is ready.", n.Username))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

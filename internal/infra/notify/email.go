package notify

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/shared"

	"gopkg.in/gomail.v2"
)

var ErrUnknownNotification = errs.New("unknown notification type")

var spotAvailableBody = template.Must(template.New("waitlist_spot_available").Parse(
	`<p>Good news! A spot is available in <strong>{{.class_name}}</strong> on {{.date}} at {{.time}}.</p>` +
		`<p>Claim it within {{.claim_minutes}} minutes or it will be offered to the next person on the waitlist.</p>`,
))

// Sender is the part of gomail.Dialer the notifier needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailNotifier struct {
	from   string
	sender Sender
	logger *slog.Logger
}

// NewNotifier returns an SMTP notifier, or a log-only one when no SMTP host
// is configured.
func NewNotifier(cfg config.SMTPConfig, logger *slog.Logger) shared.Notifier {
	if !cfg.Enabled() {
		return &LogNotifier{logger: logger}
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return NewEmailNotifier(cfg.FromEmail, dialer, logger)
}

func NewEmailNotifier(from string, sender Sender, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		from:   from,
		sender: sender,
		logger: logger,
	}
}

func (n *EmailNotifier) Send(ctx context.Context, note shared.Notification) error {
	subject, body, err := render(note)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", note.Recipient.Value())
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.sender.DialAndSend(m); err != nil {
		return errs.Wrapf(err, "failed to send %s email", note.Type)
	}
	n.logger.InfoContext(ctx, "notification sent",
		slog.String("type", string(note.Type)),
		slog.String("recipient", note.Recipient.Value()))
	return nil
}

// LogNotifier records notifications without delivering them.
type LogNotifier struct {
	logger *slog.Logger
}

func (n *LogNotifier) Send(ctx context.Context, note shared.Notification) error {
	if _, _, err := render(note); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "email delivery disabled, notification dropped",
		slog.String("type", string(note.Type)),
		slog.String("recipient", note.Recipient.Value()))
	return nil
}

func render(note shared.Notification) (subject, body string, err error) {
	switch note.Type {
	case shared.NotificationWaitlistSpotAvailable:
		subject = fmt.Sprintf("A spot opened up in %s", note.Data["class_name"])
		var b strings.Builder
		if err := spotAvailableBody.Execute(&b, note.Data); err != nil {
			return "", "", errs.Wrap(err, "render waitlist_spot_available")
		}
		body = b.String()
		return subject, body, nil
	default:
		return "", "", errs.Wrapf(ErrUnknownNotification, "type %q", note.Type)
	}
}

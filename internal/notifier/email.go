package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	log "github.com/sirupsen/logrus"
)

// EmailNotifier sends HTML mail over SMTP.
type EmailNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       []string

	send func(e *email.Email, addr string, a smtp.Auth) error
}

// NewEmailNotifier creates a notifier. to is a comma-separated recipient list.
func NewEmailNotifier(host, port, username, password, from, to string) *EmailNotifier {
	var recipients []string
	for _, r := range strings.Split(to, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return &EmailNotifier{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		To:       recipients,
		send:     (*email.Email).Send,
	}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) Send(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := email.NewEmail()
	e.From = n.From
	e.To = n.To
	e.Subject = subject
	e.HTML = []byte("<html><body>" + strings.ReplaceAll(body, "\n", "<br>\n") + "</body></html>")

	addr := fmt.Sprintf("%s:%s", n.Host, n.Port)
	var auth smtp.Auth
	if n.Username != "" {
		auth = smtp.PlainAuth("", n.Username, n.Password, n.Host)
	}
	if err := n.send(e, addr, auth); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	log.WithField("subject", subject).Infof("email sent to %d recipients", len(n.To))
	return nil
}

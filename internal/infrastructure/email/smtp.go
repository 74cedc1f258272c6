package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL prefixes links back into the planning frontend.
	BaseURL string
}

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Message is a multipart mail with a plain text and an HTML body.
type Message struct {
	To      string
	Subject string
	Plain   string
	HTML    string
}

// Mailer sends notification mail through one SMTP relay.
type Mailer struct {
	config SMTPConfig
	sender Sender
}

func NewMailer(config SMTPConfig) *Mailer {
	return NewMailerWithSender(config, gomail.NewDialer(config.Host, config.Port, config.Username, config.Password))
}

func NewMailerWithSender(config SMTPConfig, sender Sender) *Mailer {
	return &Mailer{config: config, sender: sender}
}

// PlanLink returns the frontend URL of a plan.
func (m *Mailer) PlanLink(planID uint) string {
	return fmt.Sprintf("%s/plans/%d", strings.TrimRight(m.config.BaseURL, "/"), planID)
}

func (m *Mailer) Send(msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mail %q has no recipient", msg.Subject)
	}

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.config.FromAddress, m.config.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Plain)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	if err := m.sender.DialAndSend(gm); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

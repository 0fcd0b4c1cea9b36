package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"shiftly_backend/pkg/utils"
)

// Mailer delivers the notification emails the scheduler sends: team invites
// and publish announcements.
type Mailer interface {
	SendInvite(email, role, token string) error
	SendPublishNotice(email, weekStart string, shiftCount int) error
}

type smtpMailer struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	baseURL string
}

// NewSMTPMailer creates a gomail-backed Mailer. baseURL is the public URL of
// the web app, used to build invite links.
func NewSMTPMailer(host string, port int, user, pass, from, baseURL string) Mailer {
	return &smtpMailer{host: host, port: port, user: user, pass: pass, from: from, baseURL: baseURL}
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

func (m *smtpMailer) SendInvite(email, role, token string) error {
	body := fmt.Sprintf(
		"You have been invited to join the team as %s.\n\nAccept your invite: %s/invite/%s\n",
		role, m.baseURL, token)
	return m.send(email, "You're invited to join the team", body)
}

func (m *smtpMailer) SendPublishNotice(email, weekStart string, shiftCount int) error {
	body := fmt.Sprintf(
		"The schedule for the week of %s has been published with %d shift(s).\nLog in to review your shifts.\n",
		weekStart, shiftCount)
	return m.send(email, "Schedule published", body)
}

// noopMailer is used when SMTP is not configured; deliveries are logged and
// dropped so invite flows still work in development.
type noopMailer struct{}

// NewNoopMailer creates a Mailer that only logs.
func NewNoopMailer() Mailer {
	return noopMailer{}
}

func (noopMailer) SendInvite(email, role, _ string) error {
	utils.LogInfo("SMTP not configured, skipping invite mail", map[string]interface{}{"email": email, "role": role})
	return nil
}

func (noopMailer) SendPublishNotice(email, weekStart string, shiftCount int) error {
	utils.LogInfo("SMTP not configured, skipping publish notice", map[string]interface{}{"email": email, "week_start": weekStart, "shifts": shiftCount})
	return nil
}

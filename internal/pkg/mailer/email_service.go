// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendIdeaSubmitted(toEmail, title, state string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendIdeaSubmitted(toEmail, title, state string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New idea on the roadmap: %s", title))
	m.SetBody("text/html", ideaSubmittedBody(title, state))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send idea notification to %s: %w", toEmail, err)
	}
	return nil
}

func ideaSubmittedBody(title, state string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A new idea was submitted</h2>
			<p><strong>%s</strong></p>
			<p>Current state: %s</p>
			<p>Review it on the roadmap feedback board.</p>
		</div>
	`, html.EscapeString(title), html.EscapeString(state))
}

package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/microcosm-cc/bluemonday"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for the ticket links (e.g., "http://localhost:5173")
}

// SMTPEmailService delivers ticket notifications over SMTP. It implements
// the application's TicketEmailSender.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendTicketEmail sends an update about a ticket to its customer, with a link
// back to the ticket.
func (s *SMTPEmailService) SendTicketEmail(to, subject, content string, ticketID uint, customerName string) error {
	if customerName == "" {
		customerName = "Valued Customer"
	}

	ticketURL := fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Dear %s,</p>
			<p>%s</p>
			<p>You can view your ticket and respond here: <a href="%s">View Ticket</a></p>
			<p>Best regards,<br>The Support Team</p>
		</body>
		</html>
	`, customerName, content, ticketURL)

	plainBody := fmt.Sprintf(`
Dear %s,

%s

You can view your ticket and respond here:
%s

Best regards,
The Support Team
	`, customerName, bluemonday.StrictPolicy().Sanitize(content), ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

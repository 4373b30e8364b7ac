package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for outbound mail
type EmailService interface {
	SendDriveAlert(recipients []string, companyName, role string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService over plain SMTP
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendDriveAlert sends a drive announcement to each recipient. One template is
// built and sent per recipient; a per-recipient failure is logged and never
// propagated, so a bad address cannot fail the batch. No retry, no dead-letter.
func (s *EmailServiceImpl) SendDriveAlert(recipients []string, companyName, role string) error {
	if len(recipients) == 0 {
		return nil
	}

	// If credentials are not configured, log and skip (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Int("recipients", len(recipients)).
			Str("company", companyName).
			Msg("SMTP credentials not configured - drive alert emails not sent")
		return nil
	}

	subject := "New Placement Drive Alert: " + companyName
	body := fmt.Sprintf("Dear Student,\n\n"+
		"A new placement drive has been announced!\n\n"+
		"Company: %s\n"+
		"Role: %s\n\n"+
		"Login to your portal to view details and apply.\n\n"+
		"Best Regards,\n"+
		"ElevateConnect Placement Cell", companyName, role)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	from := s.config.FromEmail
	if from == "" {
		from = s.config.Username
	}

	sent := 0
	for _, recipient := range recipients {
		msg := s.buildMessage(from, recipient, subject, body)
		if err := smtp.SendMail(addr, auth, from, []string{recipient}, msg); err != nil {
			s.logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send drive alert email")
			continue
		}
		sent++
	}

	s.logger.Info().
		Int("sent", sent).
		Int("total", len(recipients)).
		Str("company", companyName).
		Msg("Drive alert email batch finished")
	return nil
}

// buildMessage assembles the raw RFC 822 message bytes
func (s *EmailServiceImpl) buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	if s.config.FromName != "" {
		fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, from)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

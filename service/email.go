package service

import (
	"fmt"

	"chauffeur/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendPasswordResetEmail sends the password reset link to the driver.
func (s *EmailService) SendPasswordResetEmail(toEmail, name, resetLink string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("e-maildienst is niet ingeschakeld, zet CHAUFFEUR_EMAIL_ENABLED=true")
	}

	subject := "Chauffeur Dashboard - Wachtwoord opnieuw instellen"
	body := s.generateResetEmailBody(name, resetLink)

	return s.sendEmail(toEmail, subject, body)
}

// generateResetEmailBody renders the reset mail.
func (s *EmailService) generateResetEmailBody(name, resetLink string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .btn { display: inline-block; background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white !important; text-decoration: none; padding: 14px 40px; border-radius: 8px; font-weight: 600; margin: 20px 0; }
        .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .warning p { margin: 0; color: #856404; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
        .link { word-break: break-all; color: #2563eb; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Chauffeur Dashboard</h1>
        </div>
        <div class="content">
            <p>Beste <strong>%s</strong>,</p>
            <p>We hebben een verzoek ontvangen om je wachtwoord opnieuw in te stellen. Klik op de knop hieronder:</p>
            <p style="text-align: center;">
                <a href="%s" class="btn">Wachtwoord opnieuw instellen</a>
            </p>
            <div class="warning">
                <p>Deze link is <strong>30 minuten</strong> geldig.</p>
                <p>Heb je dit verzoek niet gedaan, negeer dan deze e-mail.</p>
            </div>
            <p>Werkt de knop niet? Kopieer dan deze link naar je browser:</p>
            <p class="link">%s</p>
        </div>
        <div class="footer">
            <p>Deze e-mail is automatisch verzonden, antwoorden is niet mogelijk.</p>
        </div>
    </div>
</body>
</html>
`, name, resetLink, resetLink)
}

// sendEmail delivers one message through the configured SMTP server.
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("e-mail verzenden mislukt: %w", err)
	}

	return nil
}

// SendTestEmail verifies the SMTP configuration end to end.
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("e-maildienst is niet ingeschakeld")
	}

	subject := "Chauffeur Dashboard - Testbericht"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>E-mailconfiguratie werkt</h2>
    <p>Als je dit bericht ontvangt, is de e-maildienst correct ingesteld.</p>
    <p style="color: #666;">Chauffeur Dashboard</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}

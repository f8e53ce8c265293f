package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"workwise_backend/internal/config"
)

const resetCodeTemplate = `<html>
<body>
	<p>Hello {{.Username}},</p>
	<p>Your password reset code is:</p>
	<h2>{{.Code}}</h2>
	<p>The code expires in {{.TTLMinutes}} minutes. If you did not request a
	password reset, you can ignore this message.</p>
</body>
</html>`

// SMTPProvider delivers emails through an SMTP server using gomail.
type SMTPProvider struct {
	cfg      *config.Config
	resetTpl *template.Template
}

// NewSMTPProvider creates an SMTP provider from the application config.
func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	tpl, err := template.New("reset_code").Parse(resetCodeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reset code template: %w", err)
	}

	return &SMTPProvider{cfg: cfg, resetTpl: tpl}, nil
}

func (p *SMTPProvider) SendResetCode(to, username, code string, ttl time.Duration) error {
	var body bytes.Buffer
	err := p.resetTpl.Execute(&body, map[string]interface{}{
		"Username":   username,
		"Code":       code,
		"TTLMinutes": int(ttl.Minutes()),
	})
	if err != nil {
		return fmt.Errorf("failed to render reset code email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your password reset code")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

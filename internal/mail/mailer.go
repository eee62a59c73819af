// Package mail renders named transactional email templates and delivers them
// over SMTP with both an HTML and a derived plain-text body.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/smtp"

	"quotes/internal/observability/metrics"

	"github.com/jaytaylor/html2text"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const TemplateActivateAccount = "activate_account.html"

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string // e.g. "QuotesApp Admin <no-reply@example.com>"
}

// Vars are the values every template is rendered with.
type Vars struct {
	Name    string
	URL     string
	Subject string
}

type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer { return &SMTPMailer{cfg: cfg} }

func (m *SMTPMailer) SendActivation(ctx context.Context, to, name, activationURL string) error {
	return m.Send(ctx, to, TemplateActivateAccount, Vars{
		Name:    name,
		URL:     activationURL,
		Subject: "Activate your account",
	})
}

// Send renders the named template and delivers it. The error is returned to
// the caller; callers decide whether their operation survives a failed send.
func (m *SMTPMailer) Send(ctx context.Context, to, templateName string, vars Vars) error {
	result := "success"
	defer func() {
		metrics.MailsSentTotal.WithLabelValues(templateName, result).Inc()
	}()

	if err := ctx.Err(); err != nil {
		result = "failure"
		return err
	}

	html, text, err := Render(templateName, vars)
	if err != nil {
		result = "failure"
		return err
	}

	msg, err := buildMessage(m.cfg.From, to, vars.Subject, html, text)
	if err != nil {
		result = "failure"
		return err
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		result = "failure"
		slog.Error("mail send failed", "to", to, "template", templateName, "error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	slog.Info("mail sent", "to", to, "template", templateName)
	return nil
}

// Render is a pure function from template name and variables to the two
// bodies. The plain-text part is derived from the rendered HTML.
func Render(templateName string, vars Vars) (htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, templateName, vars); err != nil {
		return "", "", fmt.Errorf("render template %s: %w", templateName, err)
	}
	htmlBody = buf.String()

	textBody, err = html2text.FromString(htmlBody, html2text.Options{TextOnly: true})
	if err != nil {
		return "", "", fmt.Errorf("derive text body: %w", err)
	}
	return htmlBody, textBody, nil
}

func buildMessage(from, to, subject, htmlBody, textBody string) ([]byte, error) {
	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", alt.Boundary())

	// Plain text first so clients fall back to it last.
	part, err := alt.CreatePart(textHeader("text/plain"))
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(part, "%s\r\n", textBody)

	part, err = alt.CreatePart(textHeader("text/html"))
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(part, "%s\r\n", htmlBody)

	if err := alt.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func textHeader(contentType string) map[string][]string {
	return map[string][]string{
		"Content-Type": {contentType + "; charset=\"UTF-8\""},
	}
}

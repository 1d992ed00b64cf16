package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/files"
	"resume-builder/internal/shared/telemetry"
)

// Mailer emails generated resume PDFs over SMTP. One client is constructed at
// startup and reused for the process lifetime.
type Mailer struct {
	client   *mail.Client
	files    *files.Store
	from     string
	fromName string
}

// New builds a Mailer from config. The client does not dial until Send or
// Verify is called.
func New(cfg config.Config, store *files.Store) (*Mailer, error) {
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		return nil, fmt.Errorf("SMTP_HOST is empty")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
	}
	// Port 465 expects implicit TLS rather than STARTTLS.
	if cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		client:   client,
		files:    store,
		from:     cfg.SMTPUser,
		fromName: cfg.MailFromName,
	}, nil
}

// Send emails the stored PDF to the recipient. All failures reduce to false;
// nothing escapes this boundary.
func (m *Mailer) Send(ctx context.Context, email, firstName, lastName, fileName string) bool {
	if !m.files.Exists(fileName) {
		telemetry.Error("mail.attachment_missing", map[string]any{"file": fileName, "to": email})
		return false
	}
	path, err := m.files.Path(fileName)
	if err != nil {
		telemetry.Error("mail.attachment_invalid", map[string]any{"file": fileName, "error": err.Error()})
		return false
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		telemetry.Error("mail.from_invalid", map[string]any{"from": m.from, "error": err.Error()})
		return false
	}
	if err := msg.To(email); err != nil {
		telemetry.Error("mail.recipient_invalid", map[string]any{"to": email, "error": err.Error()})
		return false
	}
	msg.Subject(fmt.Sprintf("Your Resume is Ready, %s!", firstName))
	msg.SetBodyString(mail.TypeTextHTML, body(firstName, lastName))
	msg.AttachFile(path, mail.WithFileName(AttachmentName(firstName, lastName)))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		telemetry.Error("mail.send_failed", map[string]any{"to": email, "error": err.Error()})
		return false
	}

	telemetry.Info("mail.sent", map[string]any{"to": email, "file": fileName})
	return true
}

// Verify checks transport reachability and credentials. It only logs; callers
// never block on the outcome.
func (m *Mailer) Verify(ctx context.Context) bool {
	if err := m.client.DialWithContext(ctx); err != nil {
		telemetry.Warn("mail.verify_failed", map[string]any{"error": err.Error()})
		return false
	}
	_ = m.client.Close()
	telemetry.Info("mail.verified", nil)
	return true
}

// AttachmentName builds the human-readable attachment filename.
func AttachmentName(firstName, lastName string) string {
	return firstName + "_" + lastName + "_Resume.pdf"
}

func body(firstName, lastName string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Hello %s %s,</h2>
  <p>Thank you for using LexAI Resume Builder! Your resume has been successfully generated.</p>
  <p>Please find your resume attached to this email.</p>
  <p>If you need to make any changes to your resume, you can do so by logging back into our platform.</p>
  <p>Best regards,<br>The LexAI Team</p>
</div>`, firstName, lastName)
}

package mailer

import (
	"context"
	"testing"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/files"
)

func testConfig() config.Config {
	return config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     465,
		SMTPUser:     "info@example.com",
		SMTPPassword: "secret",
		MailFromName: "LexAI Resume Builder",
	}
}

func TestNewRequiresHost(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPHost = "  "
	if _, err := New(cfg, files.New(t.TempDir())); err == nil {
		t.Fatal("expected error for empty SMTP host")
	}
}

func TestSendMissingAttachmentReturnsFalse(t *testing.T) {
	m, err := New(testConfig(), files.New(t.TempDir()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Missing file is rejected before any network activity.
	if m.Send(context.Background(), "ada@x.com", "Ada", "Lovelace", "resume_gone.pdf") {
		t.Fatal("expected Send to report failure for a missing attachment")
	}
}

func TestSendRejectsTraversalFilename(t *testing.T) {
	store := files.New(t.TempDir())
	m, err := New(testConfig(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Send(context.Background(), "ada@x.com", "Ada", "Lovelace", "../escape.pdf") {
		t.Fatal("expected Send to reject a traversal filename")
	}
}

func TestAttachmentName(t *testing.T) {
	if got := AttachmentName("Ada", "Lovelace"); got != "Ada_Lovelace_Resume.pdf" {
		t.Fatalf("AttachmentName = %q", got)
	}
}

package mailer

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"ejsis-server/internal/config"
)

// emailTypeLabels keys the subject line by equipment type; anything
// unrecognized falls back to the plain "JSIS" label.
var emailTypeLabels = map[string]string{
	"ac":         "A/C JSIS",
	"heatpump":   "Heat Pump JSIS",
	"gasfurnace": "Gas Furnace JSIS",
}

// SendReportInput carries everything needed to deliver one report.
type SendReportInput struct {
	TechEmail     string
	TechName      string
	PDFPath       string
	RecordID      int64
	JSISType      string
	HomeownerName string
}

// Mailer delivers finished report PDFs to the technician with a copy
// to the support address. A configured SMTP user enables
// authenticated SMTP; otherwise mail is relayed unauthenticated
// through a local MTA.
type Mailer struct {
	cfg       config.SMTPConfig
	outputDir string
	logger    *zap.Logger
}

func New(cfg config.SMTPConfig, outputDir string, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, outputDir: outputDir, logger: logger}
}

// SendReport emails the report. A failure here never invalidates the
// artifact: the caller can retry transmission without regenerating.
func (m *Mailer) SendReport(in SendReportInput) error {
	if in.TechEmail == "" {
		return fmt.Errorf("technician email is required")
	}

	typeLabel := "JSIS"
	if l, ok := emailTypeLabels[in.JSISType]; ok {
		typeLabel = l
	}
	subject := fmt.Sprintf("%s Report #%d", typeLabel, in.RecordID)
	if in.HomeownerName != "" {
		subject += " - " + in.HomeownerName
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetAddressHeader("To", in.TechEmail, in.TechName)
	if m.cfg.SupportEmail != "" {
		msg.SetHeader("Cc", m.cfg.SupportEmail)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainTextBody(in.TechName, in.RecordID, typeLabel, in.HomeownerName))
	msg.AddAlternative("text/html", htmlBody(in.TechName, in.RecordID, typeLabel, in.HomeownerName))

	if _, err := os.Stat(in.PDFPath); err == nil {
		msg.Attach(in.PDFPath, gomail.Rename(fmt.Sprintf("JSIS_Report_%d.pdf", in.RecordID)))
	}

	dialer := &gomail.Dialer{Host: m.cfg.Host, Port: m.cfg.Port}
	if m.cfg.User != "" {
		dialer = gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	}

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("email could not be sent: %w", err)
	}

	m.logger.Info("Sent JSIS report email",
		zap.Int64("record_id", in.RecordID),
		zap.String("to", in.TechEmail),
	)
	return nil
}

// Cleanup deletes a transmitted artifact, refusing anything outside
// the report output directory.
func (m *Mailer) Cleanup(path string) bool {
	absOut, err := filepath.Abs(m.outputDir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if !strings.HasPrefix(absPath, absOut+string(filepath.Separator)) {
		return false
	}
	return os.Remove(absPath) == nil
}

func htmlBody(techName string, recordID int64, typeLabel, homeownerName string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #b41e1e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .footer { background-color: #f5f5f5; padding: 15px; text-align: center; font-size: 12px; color: #666; }
        .record-id { font-size: 24px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>eJSIS Report Submitted</h1>
    </div>
    <div class="content">
`)
	fmt.Fprintf(&b, "        <p>Hello %s,</p>\n", html.EscapeString(techName))
	fmt.Fprintf(&b, "        <p>Your <strong>%s</strong> report has been successfully submitted and recorded.</p>\n",
		html.EscapeString(typeLabel))
	fmt.Fprintf(&b, "        <p class=\"record-id\">Record ID: #%d</p>\n", recordID)
	if homeownerName != "" {
		fmt.Fprintf(&b, "        <p><strong>Customer:</strong> %s</p>\n", html.EscapeString(homeownerName))
	}
	b.WriteString(`        <p>The complete report is attached as a PDF for your records.</p>
        <p>Thank you for using eJSIS.</p>
    </div>
    <div class="footer">
        <p>This is an automated message from the eJSIS system.<br>
        Please do not reply to this email.</p>
    </div>
</body>
</html>`)
	return b.String()
}

func plainTextBody(techName string, recordID int64, typeLabel, homeownerName string) string {
	var b strings.Builder
	b.WriteString("eJSIS Report Submitted\n\n")
	fmt.Fprintf(&b, "Hello %s,\n\n", techName)
	fmt.Fprintf(&b, "Your %s report has been successfully submitted and recorded.\n\n", typeLabel)
	fmt.Fprintf(&b, "Record ID: #%d\n", recordID)
	if homeownerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", homeownerName)
	}
	b.WriteString("\nThe complete report is attached as a PDF for your records.\n\n")
	b.WriteString("Thank you for using eJSIS.\n\n")
	b.WriteString("---\nThis is an automated message from the eJSIS system.\n")
	return b.String()
}

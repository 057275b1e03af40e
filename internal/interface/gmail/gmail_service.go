package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"

	"tourism-service/internal/domain/entity"
	"tourism-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailService sends notification emails through the Gmail API
type GmailService struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailService creates a new Gmail sender
func NewGmailService(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*GmailService, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailService{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// Send delivers email as the authenticated user
func (s *GmailService) Send(ctx context.Context, email *entity.Email) (string, error) {
	raw, err := BuildMIME(s.from, email)
	if err != nil {
		return "", fmt.Errorf("failed to build message: %w", err)
	}

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}

	sent, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail send failed: %w", err)
	}

	s.logger.Debug("Email sent", "messageID", sent.Id, "kind", email.Kind)

	return sent.Id, nil
}

// BuildMIME renders email as a multipart/alternative RFC 5322 message
func BuildMIME(from string, email *entity.Email) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := []string{
		"MIME-Version: 1.0",
		"To: " + email.To,
		"Subject: " + mime.QEncoding.Encode("utf-8", email.Subject),
		"Content-Type: multipart/alternative; boundary=" + writer.Boundary(),
	}
	if from != "" {
		headers = append([]string{"From: " + from}, headers...)
	}
	if email.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+email.ReplyTo)
	}

	var out bytes.Buffer
	out.WriteString(strings.Join(headers, "\r\n"))
	out.WriteString("\r\n\r\n")

	parts := []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", email.TextBody},
		{"text/html; charset=UTF-8", email.HTMLBody},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		w, err := writer.CreatePart(textproto.MIMEHeader{"Content-Type": {p.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	out.Write(buf.Bytes())
	return out.Bytes(), nil
}

// LogSender logs emails instead of sending them. Used when Gmail is not configured.
type LogSender struct {
	logger logger.Logger
}

// NewLogSender creates a log-only sender
func NewLogSender(logger logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the envelope of email
func (s *LogSender) Send(_ context.Context, email *entity.Email) (string, error) {
	s.logger.Info("Mail transport not configured, email not sent",
		"kind", email.Kind,
		"to", email.To,
		"subject", email.Subject)
	return "", nil
}

package testutils

import (
	"context"
	"errors"
	"sync"

	"tourism-service/internal/domain/entity"
)

// ErrMailDown is returned by a failing MailSender
var ErrMailDown = errors.New("mail transport unavailable")

// MailSender records every email it is asked to send
type MailSender struct {
	mu   sync.Mutex
	sent []*entity.Email
	Fail bool
}

// Send records email, or fails when Fail is set
func (m *MailSender) Send(_ context.Context, email *entity.Email) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail {
		return "", ErrMailDown
	}
	m.sent = append(m.sent, email)
	return "msg-" + email.Kind, nil
}

// Sent returns the recorded emails
func (m *MailSender) Sent() []*entity.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.Email(nil), m.sent...)
}

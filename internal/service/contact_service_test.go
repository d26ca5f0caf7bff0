package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
	"github.com/ssapio/inferencegate-web/internal/shared/errors"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// fakeDispatcher records sends and fails on demand
type fakeDispatcher struct {
	configured bool
	sendErr    error
	sent       []*domain.NotificationMessage
}

func (f *fakeDispatcher) Configured() bool { return f.configured }

func (f *fakeDispatcher) Send(_ context.Context, msg *domain.NotificationMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func contactConfig() *config.Config {
	return &config.Config{
		SMTP:    config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "relay@ssap.io", Pass: "secret"},
		Contact: config.ContactConfig{To: "marko@ssap.io"},
	}
}

func TestContactService_Submit(t *testing.T) {
	dispatcher := &fakeDispatcher{configured: true}
	svc := NewContactService(dispatcher, contactConfig(), logger.NewNop())

	sub := &domain.ContactSubmission{
		Email:   "a@b.com",
		Company: "Acme",
		Spend:   "$5k/mo",
		Message: "Hello there, interested.",
	}

	if err := svc.Submit(context.Background(), sub, domain.RequestMeta{ID: "r1"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(dispatcher.sent) != 1 {
		t.Fatalf("sent %d messages, want exactly 1", len(dispatcher.sent))
	}

	msg := dispatcher.sent[0]
	if msg.Subject != "InferenceGate contact • Acme • $5k/mo/mo" {
		t.Errorf("Subject = %q, want %q", msg.Subject, "InferenceGate contact • Acme • $5k/mo/mo")
	}
	if msg.To != "marko@ssap.io" {
		t.Errorf("To = %q, want marko@ssap.io", msg.To)
	}
	if msg.From != "relay@ssap.io" {
		t.Errorf("From = %q, want relay@ssap.io (SMTP user fallback)", msg.From)
	}
	if msg.ReplyTo != "a@b.com" {
		t.Errorf("ReplyTo = %q, want a@b.com", msg.ReplyTo)
	}

	wantBody := "New contact form submission\n" +
		"Email: a@b.com\n" +
		"Company: Acme\n" +
		"Approx monthly LLM spend: $5k/mo\n" +
		"Message:\n" +
		"Hello there, interested."
	if msg.Body != wantBody {
		t.Errorf("Body = %q, want %q", msg.Body, wantBody)
	}
}

func TestContactService_SubmitWithSource(t *testing.T) {
	dispatcher := &fakeDispatcher{configured: true}
	svc := NewContactService(dispatcher, contactConfig(), logger.NewNop())

	sub := &domain.ContactSubmission{
		Email:   "a@b.com",
		Company: "Acme",
		Spend:   "$5k/mo",
		Message: "Hello there, interested.",
		Source:  "pricing-page",
	}

	if err := svc.Submit(context.Background(), sub, domain.RequestMeta{}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !strings.Contains(dispatcher.sent[0].Body, "Source: pricing-page") {
		t.Errorf("Body missing source line: %q", dispatcher.sent[0].Body)
	}
}

func TestContactService_Unconfigured(t *testing.T) {
	dispatcher := &fakeDispatcher{configured: false}
	svc := NewContactService(dispatcher, contactConfig(), logger.NewNop())

	err := svc.Submit(context.Background(), &domain.ContactSubmission{Email: "a@b.com"}, domain.RequestMeta{})
	if err == nil {
		t.Fatal("Submit() error = nil, want CONFIG_ERROR")
	}
	if !errors.IsCode(err, "CONFIG_ERROR") {
		t.Errorf("Submit() error = %v, want CONFIG_ERROR code", err)
	}
	if len(dispatcher.sent) != 0 {
		t.Errorf("sent %d messages with unconfigured transport, want 0", len(dispatcher.sent))
	}
}

func TestContactService_SendFailure(t *testing.T) {
	dispatcher := &fakeDispatcher{configured: true, sendErr: fmt.Errorf("connection refused")}
	svc := NewContactService(dispatcher, contactConfig(), logger.NewNop())

	err := svc.Submit(context.Background(), &domain.ContactSubmission{Email: "a@b.com"}, domain.RequestMeta{})
	if err == nil {
		t.Fatal("Submit() error = nil, want TRANSPORT_ERROR")
	}
	if !errors.IsCode(err, "TRANSPORT_ERROR") {
		t.Errorf("Submit() error = %v, want TRANSPORT_ERROR code", err)
	}
}

func TestContactService_NoDeduplication(t *testing.T) {
	dispatcher := &fakeDispatcher{configured: true}
	svc := NewContactService(dispatcher, contactConfig(), logger.NewNop())

	sub := &domain.ContactSubmission{
		Email:   "a@b.com",
		Company: "Acme",
		Spend:   "$5k/mo",
		Message: "Hello there, interested.",
	}

	for i := 0; i < 2; i++ {
		if err := svc.Submit(context.Background(), sub, domain.RequestMeta{}); err != nil {
			t.Fatalf("Submit() #%d error = %v", i+1, err)
		}
	}

	if len(dispatcher.sent) != 2 {
		t.Errorf("sent %d messages for two identical submissions, want 2", len(dispatcher.sent))
	}
}

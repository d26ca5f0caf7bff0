package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/metrics"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
	"github.com/ssapio/inferencegate-web/internal/shared/errors"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// ContactService relays contact-form submissions to the configured inbox.
// Delivery is the whole point of the endpoint, so an unconfigured or failing
// transport is fatal for the request.
type ContactService struct {
	dispatcher Dispatcher
	cfg        *config.Config
	log        *logger.Logger
}

// NewContactService creates a new contact relay service
func NewContactService(dispatcher Dispatcher, cfg *config.Config, log *logger.Logger) *ContactService {
	return &ContactService{
		dispatcher: dispatcher,
		cfg:        cfg,
		log:        log,
	}
}

// Submit builds and dispatches exactly one notification for a validated
// submission. Identical submissions produce independent sends; there is no
// deduplication.
func (s *ContactService) Submit(ctx context.Context, sub *domain.ContactSubmission, meta domain.RequestMeta) error {
	if !s.dispatcher.Configured() {
		return errors.NewConfigError("Server is not configured (missing SMTP_HOST/SMTP_USER/SMTP_PASS).", nil)
	}

	msg := s.buildMessage(sub)

	start := time.Now()
	if err := s.dispatcher.Send(ctx, msg); err != nil {
		metrics.EmailsFailed.WithLabelValues("contact").Inc()
		s.log.Error("Failed to relay contact submission",
			"error", err, "request_id", meta.ID, "company", sub.Company)
		return errors.NewTransportError("contact relay failed", err)
	}
	metrics.SendDuration.WithLabelValues("contact").Observe(time.Since(start).Seconds())
	metrics.EmailsSent.WithLabelValues("contact").Inc()

	s.log.Info("Contact submission relayed",
		"request_id", meta.ID, "company", sub.Company, "to", s.cfg.Contact.To)
	return nil
}

// buildMessage renders the notification for a submission. Subject and body
// layout are load-bearing; the inbox has filters keyed on them.
func (s *ContactService) buildMessage(sub *domain.ContactSubmission) *domain.NotificationMessage {
	var source string
	if sub.Source != "" {
		source = "Source: " + sub.Source
	}

	return &domain.NotificationMessage{
		To:      s.cfg.Contact.To,
		From:    s.cfg.ContactFrom(),
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("InferenceGate contact • %s • %s/mo", sub.Company, sub.Spend),
		Body: domain.JoinLines(
			"New contact form submission",
			"",
			"Email: "+sub.Email,
			"Company: "+sub.Company,
			"Approx monthly LLM spend: "+sub.Spend,
			source,
			"",
			"Message:",
			sub.Message,
		),
	}
}

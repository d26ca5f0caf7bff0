package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ssapio/inferencegate-web/internal/assets"
	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/metrics"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
	"github.com/ssapio/inferencegate-web/internal/shared/errors"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// LeadService captures a download lead and returns the PDF. The notification
// is secondary to the download: with no transport configured it is skipped,
// and unless NotificationRequired is set a failed send never blocks delivery.
type LeadService struct {
	dispatcher Dispatcher
	store      *assets.Store
	cfg        *config.Config
	log        *logger.Logger

	// NotificationRequired makes a failed lead notification abort the
	// download. Off in production; the flag exists so the policy is
	// explicit and testable rather than buried in control flow.
	NotificationRequired bool
}

// NewLeadService creates a new lead capture service
func NewLeadService(dispatcher Dispatcher, store *assets.Store, cfg *config.Config, log *logger.Logger) *LeadService {
	return &LeadService{
		dispatcher: dispatcher,
		store:      store,
		cfg:        cfg,
		log:        log,
	}
}

// Capture notifies the leads inbox (best effort) and returns the PDF bytes
// and its download file name.
func (s *LeadService) Capture(ctx context.Context, lead *domain.LeadRequest, meta domain.RequestMeta) ([]byte, string, error) {
	if s.dispatcher.Configured() {
		msg := s.buildMessage(lead, meta)

		start := time.Now()
		if err := s.dispatcher.Send(ctx, msg); err != nil {
			metrics.EmailsFailed.WithLabelValues("lead").Inc()
			if s.NotificationRequired {
				return nil, "", errors.NewTransportError("lead notification failed", err)
			}
			s.log.Warn("Lead notification failed, continuing with download",
				"error", err, "request_id", meta.ID)
		} else {
			metrics.SendDuration.WithLabelValues("lead").Observe(time.Since(start).Seconds())
			metrics.EmailsSent.WithLabelValues("lead").Inc()
		}
	}

	data, err := s.store.Read(s.cfg.Assets.PilotPDF)
	if err != nil {
		s.log.Error("Failed to read pilot PDF", "error", err, "request_id", meta.ID)
		return nil, "", err
	}

	metrics.PDFDownloads.Inc()
	s.log.Info("Lead captured", "request_id", meta.ID, "file", s.cfg.Assets.PilotPDF)
	return data, s.cfg.Assets.PilotPDF, nil
}

// buildMessage renders the lead notification with best-effort request
// metadata
func (s *LeadService) buildMessage(lead *domain.LeadRequest, meta domain.RequestMeta) *domain.NotificationMessage {
	var ip, ua string
	if meta.ClientIP != "" {
		ip = "IP: " + meta.ClientIP
	}
	if meta.UserAgent != "" {
		ua = "User-Agent: " + meta.UserAgent
	}

	return &domain.NotificationMessage{
		To:      s.cfg.LeadTo(),
		From:    s.cfg.LeadFrom(),
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("PDF download lead • %s", lead.Email),
		Body: domain.JoinLines(
			"New PDF download lead",
			"",
			"Email: "+lead.Email,
			"Time: "+meta.Time.UTC().Format(time.RFC3339),
			ip,
			ua,
		),
	}
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/metrics"
	"github.com/ssapio/inferencegate-web/internal/service"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// LeadHandler handles POST /api/pilot-pdf
type LeadHandler struct {
	leads *service.LeadService
	log   *logger.Logger
}

// NewLeadHandler creates a new lead capture handler
func NewLeadHandler(leads *service.LeadService, log *logger.Logger) *LeadHandler {
	return &LeadHandler{
		leads: leads,
		log:   log,
	}
}

// Download validates the lead email, dispatches the best-effort notification
// and streams back the pilot PDF.
func (h *LeadHandler) Download(c *gin.Context) {
	var lead domain.LeadRequest
	if err := c.ShouldBindJSON(&lead); err != nil {
		lead = domain.LeadRequest{}
	}
	lead.Normalize()

	if lead.IsBot() {
		metrics.HoneypotTrips.WithLabelValues("lead").Inc()
		respondOK(c)
		return
	}

	if err := lead.Validate(); err != nil {
		metrics.LeadCaptures.WithLabelValues("rejected").Inc()
		respondAppError(c, err)
		return
	}

	meta := requestMeta(c)
	data, name, err := h.leads.Capture(c.Request.Context(), &lead, meta)
	if err != nil {
		metrics.LeadCaptures.WithLabelValues("failed").Inc()
		respondAppError(c, err)
		return
	}

	metrics.LeadCaptures.WithLabelValues("accepted").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/metrics"
	"github.com/ssapio/inferencegate-web/internal/service"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// ContactHandler handles POST /api/contact
type ContactHandler struct {
	contacts *service.ContactService
	log      *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		log:      log,
	}
}

// Submit validates a contact submission and relays it. A malformed JSON body
// is treated as all-fields-absent and funneled into the validation path
// rather than surfaced as a parse error.
func (h *ContactHandler) Submit(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		sub = domain.ContactSubmission{}
	}
	sub.Normalize()

	if sub.IsBot() {
		// Fabricated success: the bot learns nothing and nothing is sent.
		metrics.HoneypotTrips.WithLabelValues("contact").Inc()
		respondOK(c)
		return
	}

	if err := sub.Validate(); err != nil {
		metrics.ContactSubmissions.WithLabelValues("rejected").Inc()
		respondAppError(c, err)
		return
	}

	meta := requestMeta(c)
	if err := h.contacts.Submit(c.Request.Context(), &sub, meta); err != nil {
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		respondAppError(c, err)
		return
	}

	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	respondOK(c)
}

package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/middleware"
	"github.com/ssapio/inferencegate-web/internal/shared/clientip"
	"github.com/ssapio/inferencegate-web/internal/shared/errors"
)

// envelope is the uniform JSON response shape of the API. Every failure,
// whatever its origin, is reported through it.
type envelope struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func respondOK(c *gin.Context) {
	c.JSON(http.StatusOK, envelope{OK: true})
}

func respondError(c *gin.Context, status int, message, detail string) {
	c.JSON(status, envelope{OK: false, Error: message, Detail: detail})
}

// respondAppError maps the error taxonomy onto HTTP statuses: validation is
// the caller's fault (400, named rule), missing configuration is the
// operator's (500, explicit diagnostic), everything else is a generic 500
// with the raw cause in detail.
func respondAppError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		respondError(c, http.StatusInternalServerError, "Unexpected server error.", err.Error())
		return
	}

	switch appErr.Code {
	case "VALIDATION_ERROR":
		respondError(c, http.StatusBadRequest, appErr.Message, "")
	case "CONFIG_ERROR":
		respondError(c, http.StatusInternalServerError, appErr.Message, "")
	default:
		detail := appErr.Message
		if appErr.Err != nil {
			detail = appErr.Err.Error()
		}
		respondError(c, http.StatusInternalServerError, "Unexpected server error.", detail)
	}
}

// requestMeta collects per-request metadata for notifications and logs
func requestMeta(c *gin.Context) domain.RequestMeta {
	return domain.RequestMeta{
		ID:        middleware.RequestID(c),
		ClientIP:  clientip.FromRequest(c.Request),
		UserAgent: c.Request.UserAgent(),
		Time:      time.Now(),
	}
}

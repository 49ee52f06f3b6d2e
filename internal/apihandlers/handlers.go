package apihandlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mailtriage/internal/models"
	"mailtriage/internal/triage"
)

// APIHandler exposes the triage pipeline over HTTP.
type APIHandler struct {
	Triage *triage.Service
}

func NewAPIHandler(svc *triage.Service) *APIHandler {
	return &APIHandler{Triage: svc}
}

// TriageHandler accepts one e-mail and returns its full triage record. The
// request body uses the same field names as the fixture e-mails:
//
//	{"id":"...","remetente":"...","assunto":"...","corpo":"..."}
func (h *APIHandler) TriageHandler(c *gin.Context) {
	var email models.Email
	if err := c.ShouldBindJSON(&email); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(email.ID) == "" {
		BadRequest(c, "field 'id' is required")
		return
	}

	record, err := h.Triage.Process(c.Request.Context(), email)
	if err != nil {
		// Model backend unreachable after retries; nothing we can serve.
		if errors.Is(err, models.ErrModelCall) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "model backend unavailable: " + err.Error()})
			return
		}
		Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, record)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Internal(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

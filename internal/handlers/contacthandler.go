package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/hireable/internal/contact"
	"github.com/justsurfingit/hireable/internal/dtos"
	"github.com/justsurfingit/hireable/internal/metrics"
)

type ContactHandler struct {
	ContactService *contact.Service
}

func NewContactHandler(s *contact.Service) *ContactHandler {
	return &ContactHandler{ContactService: s}
}

// Submit is POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact form: " + err.Error()})
		return
	}

	err := h.ContactService.Submit(c.Request.Context(), req.Draft())
	switch {
	case errors.Is(err, contact.ErrIncomplete):
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  err.Error(),
			"notice": dtos.Failure(contact.MsgFailed),
		})
		return
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	c.JSON(http.StatusOK, dtos.ContactResponse{
		Notice: dtos.Success(contact.MsgSent),
		Reset:  contact.Draft{},
	})
}

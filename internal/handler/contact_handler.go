package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
	"github.com/brainbridge/catalog-gateway/pkg/response"
)

type contactService interface {
	Submit(ctx context.Context, token string, req dto.ContactRequest) (string, error)
}

// ContactHandler forwards contact-form submissions.
type ContactHandler struct {
	service contactService
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(svc contactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit godoc
// @Summary Submit a contact-form message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Contact payload"
// @Success 201 {object} response.Envelope
// @Router /contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	message, err := h.service.Submit(c.Request.Context(), tokenFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, response.Envelope{Success: true, Message: message})
}

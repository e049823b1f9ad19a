package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/brainbridge/catalog-gateway/internal/models"
	"github.com/brainbridge/catalog-gateway/pkg/response"
)

type accountService interface {
	Profile(ctx context.Context, token string) (json.RawMessage, *models.Redirect, error)
}

// AccountHandler passes student account endpoints through.
type AccountHandler struct {
	service accountService
}

// NewAccountHandler constructs an account handler.
func NewAccountHandler(svc accountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// Profile godoc
// @Summary Fetch the authenticated student's profile
// @Tags Account
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /profile [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	profile, redirect, err := h.service.Profile(c.Request.Context(), tokenFromContext(c))
	if err != nil {
		if redirect != nil {
			response.ErrorWithData(c, err, gin.H{"redirect": redirect})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

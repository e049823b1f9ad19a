package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/brainbridge/catalog-gateway/internal/middleware"
)

func tokenFromContext(c *gin.Context) string {
	return middleware.Token(c)
}

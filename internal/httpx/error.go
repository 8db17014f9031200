// Package httpx maps service errors onto HTTP responses.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fathurrm/tokopos/pkg/apperr"
)

func Error(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	var ce *apperr.ConflictError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"error": ce.Message})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		// Store and unknown errors are logged where they happen; the
		// client only gets a generic failure message.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

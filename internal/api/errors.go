package api

import (
	"alcyxob/lesson-planner/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrExtraction):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the {"error": msg} envelope for err. The full error is
// attached to the gin context so RequestLogger records it.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	abortWithError(c, statusFor(err), service.PublicMessage(err))
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

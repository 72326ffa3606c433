package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestay/internal/domain"
)

// DomainError maps the error taxonomy to HTTP responses. FatalStateError
// is not handled here: the owning handler picks its redirect delay.
func DomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case domain.IsNotFound(err):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case domain.IsTransient(err):
		Error(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Something went wrong. Please try again later.")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

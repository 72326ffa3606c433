package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestay/internal/domain"
	"luxestay/internal/middleware"
	"luxestay/internal/pkg/response"
	"luxestay/internal/session"
)

type Handler struct {
	service *Service
	flows   *session.Store
}

func NewHandler(service *Service, flows *session.Store) *Handler {
	return &Handler{service: service, flows: flows}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/filter", h.FilterContext)
	rg.GET("/filter/search", h.Search)
}

func (h *Handler) FilterContext(c *gin.Context) {
	// Returning to the filter page restarts the flow; any draft left
	// over from an abandoned run is dropped.
	h.flows.Get(middleware.SessionID(c)).ClearDraft()

	ctx, err := h.service.FilterContext(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ctx)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters")
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		// "No rooms" is a plain message, not a retryable failure.
		if domain.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "NO_ROOMS", "No available rooms found for selected criteria.")
			return
		}
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

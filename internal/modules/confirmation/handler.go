package confirmation

import (
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.GET("/confirmation", h.Confirm)
	rg.GET("/confirmation/receipt", h.Receipt)
}

func (h *Handler) Confirm(c *gin.Context) {
	var req Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid confirmation parameters")
		return
	}

	flow := h.flows.Get(middleware.SessionID(c))
	result := h.service.Confirm(c.Request.Context(), flow, req)
	if result.State == StateFailed {
		response.Failure(c, http.StatusOK, result)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Receipt streams the invoice PDF for the session's booking. The id
// comes from the query or falls back to the session slot.
func (h *Handler) Receipt(c *gin.Context) {
	bookingID := c.Query("bookingId")
	if bookingID == "" {
		bookingID = h.flows.Get(middleware.SessionID(c)).LatestBookingID()
	}
	if bookingID == "" {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No booking to download a receipt for.")
		return
	}

	pdf, filename, err := h.service.Receipt(c.Request.Context(), bookingID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

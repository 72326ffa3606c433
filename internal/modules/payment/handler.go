package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestay/internal/domain"
	"luxestay/internal/middleware"
	"luxestay/internal/pkg/response"
	"luxestay/internal/session"
)

// fatalRedirectSeconds is the bounded delay before the client leaves a
// payment step reached without a draft.
const fatalRedirectSeconds = 2

type Handler struct {
	service *Service
	flows   *session.Store
}

func NewHandler(service *Service, flows *session.Store) *Handler {
	return &Handler{service: service, flows: flows}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payment", h.Context)
	rg.POST("/payment/promo", h.ApplyPromo)
	rg.POST("/payment/pay", h.Pay)
}

func (h *Handler) Context(c *gin.Context) {
	flow := h.flows.Get(middleware.SessionID(c))
	ctx, err := h.service.Context(flow, "")
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ctx)
}

// ApplyPromo re-derives the total from the current code value. Nothing
// accumulates; a wrong code after a right one drops the discount.
func (h *Handler) ApplyPromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	flow := h.flows.Get(middleware.SessionID(c))
	ctx, err := h.service.Context(flow, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ctx)
}

func (h *Handler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	flow := h.flows.Get(middleware.SessionID(c))
	result, err := h.service.Pay(c.Request.Context(), flow, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case domain.IsFatalState(err):
		response.RedirectHome(c, http.StatusConflict, "FLOW_STATE_MISSING",
			"Payment step opened without a booking in progress.", fatalRedirectSeconds)
	case errors.Is(err, ErrSubmissionInFlight):
		response.Error(c, http.StatusTooManyRequests, "SUBMISSION_IN_FLIGHT",
			"Your booking is already being processed.")
	default:
		response.DomainError(c, err)
	}
}

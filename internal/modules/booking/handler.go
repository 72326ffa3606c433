package booking

import (
	"net/http"
	"strconv"

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
	rg.GET("/book/:roomId", h.RoomContext)
	rg.POST("/book/:roomId", h.SubmitContact)
}

func (h *Handler) RoomContext(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("roomId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	var stay StayParams
	if err := c.ShouldBindQuery(&stay); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stay parameters")
		return
	}

	ctx, err := h.service.RoomContext(c.Request.Context(), roomID, stay)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ctx)
}

// SubmitContact validates the contact form, stores the draft in the
// session flow and points the client at the payment step. The draft is
// never part of the response URL; only the live session can reach it.
func (h *Handler) SubmitContact(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("roomId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	var stay StayParams
	if err := c.ShouldBindQuery(&stay); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stay parameters")
		return
	}
	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.BuildDraft(c.Request.Context(), roomID, stay, form)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	flow := h.flows.Get(middleware.SessionID(c))
	flow.SetDraft(*draft)

	response.Success(c, http.StatusOK, DraftResult{
		Draft:       *draft,
		RedirectURL: "/payment",
	})
}

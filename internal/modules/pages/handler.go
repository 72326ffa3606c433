package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestay/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages", h.List)
	rg.GET("/pages/:slug", h.BySlug)
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, Catalog())
}

func (h *Handler) BySlug(c *gin.Context) {
	p, ok := BySlug(c.Param("slug"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Page not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

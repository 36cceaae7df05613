package summarize

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summarize", h.summarize)
}

func (h *Handler) summarize(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.service.Summarize(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errNoProvider) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"ok": 0, "code": http.StatusServiceUnavailable, "message": err.Error(),
			})
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, resp)
}

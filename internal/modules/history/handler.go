package history

import (
	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/middleware"
	"github.com/medscribe/core/internal/pkg/pagination"
	"github.com/medscribe/core/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the history endpoints under /history. Every route
// requires the device identity header.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, deviceMW gin.HandlerFunc) {
	g := rg.Group("/history", deviceMW)
	g.POST("", h.save)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.remove)
}

func (h *Handler) save(c *gin.Context) {
	var payload SavePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	rec, err := h.service.Upsert(c.Request.Context(), middleware.CurrentDeviceID(c), payload)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rec)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	page, err := h.service.List(c.Request.Context(), middleware.CurrentDeviceID(c), q.Skip, q.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, page)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), middleware.CurrentDeviceID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "summary not found")
		return
	}
	response.OK(c, rec)
}

func (h *Handler) remove(c *gin.Context) {
	ok, err := h.service.Delete(c.Request.Context(), middleware.CurrentDeviceID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFoundMsg(c, "summary not found")
		return
	}
	response.NoContent(c)
}

package translate

import (
	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/pkg/response"
)

// Request is the body of a translate call.
type Request struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

// Response carries the translated text and echoes the target language.
type Response struct {
	TranslatedText string `json:"translated_text"`
	TargetLanguage string `json:"target_language"`
}

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/translate", h.translate)
}

func (h *Handler) translate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	translated, err := h.client.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, Response{TranslatedText: translated, TargetLanguage: req.TargetLanguage})
}

package upload

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/pkg/response"
)

// Response carries the extracted text of an uploaded transcript file.
type Response struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}

// upload accepts a multipart .txt file and returns its content. Other file
// types are rejected until richer parsers exist.
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".txt") {
		response.BadRequest(c, "Only .txt files are supported currently.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !utf8.Valid(content) {
		response.InternalError(c, errors.New("error reading file: content is not valid UTF-8 text"))
		return
	}

	response.OK(c, Response{Text: string(content), Filename: fileHeader.Filename})
}

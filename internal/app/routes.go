package app

import (
	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/middleware"
	"github.com/medscribe/core/internal/modules/history"
	"github.com/medscribe/core/internal/modules/summarize"
	"github.com/medscribe/core/internal/modules/translate"
	"github.com/medscribe/core/internal/modules/upload"
	"github.com/medscribe/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("")

	summarize.NewHandler(summarize.NewService(a.cfg.AI)).RegisterRoutes(api)
	translate.NewHandler(translate.NewClient(a.cfg.Translate.Endpoint)).RegisterRoutes(api)
	upload.NewHandler().RegisterRoutes(api)

	historySvc := history.NewService(history.NewMongoStore(a.db))
	history.NewHandler(historySvc).RegisterRoutes(api, middleware.DeviceID())
}

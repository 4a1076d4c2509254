package routes

import (
	"github.com/gin-gonic/gin"

	"koinonia/internal/handlers"
)

type ReadingRoutes struct {
	handler *handlers.ReadingHandler
}

func NewReadingRoutes(handler *handlers.ReadingHandler) *ReadingRoutes {
	return &ReadingRoutes{handler: handler}
}

func (r *ReadingRoutes) RegisterRoutes(router *gin.RouterGroup) {
	readings := router.Group("/readings")
	{
		readings.GET("", r.handler.ListEntries)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"koinonia/internal/handlers"
)

type SyllabusRoutes struct {
	handler *handlers.SyllabusHandler
}

func NewSyllabusRoutes(handler *handlers.SyllabusHandler) *SyllabusRoutes {
	return &SyllabusRoutes{handler: handler}
}

func (r *SyllabusRoutes) RegisterRoutes(router *gin.RouterGroup) {
	syllabus := router.Group("/syllabus")
	{
		syllabus.POST("/paths", r.handler.GeneratePath)
		syllabus.GET("/paths", r.handler.ListPaths)
		syllabus.GET("/paths/:path_id", r.handler.GetPath)
	}
}

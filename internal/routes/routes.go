package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koinonia/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, syllabusHandler *handlers.SyllabusHandler, taxonomyHandler *handlers.TaxonomyHandler, readingHandler *handlers.ReadingHandler, searchHandler *handlers.SearchHandler) {
	api := router.Group("/api/v1")

	syllabusRoutes := NewSyllabusRoutes(syllabusHandler)
	syllabusRoutes.RegisterRoutes(api)

	taxonomyRoutes := NewTaxonomyRoutes(taxonomyHandler)
	taxonomyRoutes.RegisterRoutes(api)

	readingRoutes := NewReadingRoutes(readingHandler)
	readingRoutes.RegisterRoutes(api)

	searchRoutes := NewSearchRoutes(searchHandler)
	searchRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}

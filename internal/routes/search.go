package routes

import (
	"github.com/gin-gonic/gin"

	"koinonia/internal/handlers"
)

type SearchRoutes struct {
	handler *handlers.SearchHandler
}

func NewSearchRoutes(handler *handlers.SearchHandler) *SearchRoutes {
	return &SearchRoutes{handler: handler}
}

func (r *SearchRoutes) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		search.GET("", r.handler.Search)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"koinonia/internal/handlers"
)

type TaxonomyRoutes struct {
	handler *handlers.TaxonomyHandler
}

func NewTaxonomyRoutes(handler *handlers.TaxonomyHandler) *TaxonomyRoutes {
	return &TaxonomyRoutes{handler: handler}
}

func (r *TaxonomyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	taxonomy := router.Group("/taxonomy")
	{
		taxonomy.GET("", r.handler.GetTree)
	}
}

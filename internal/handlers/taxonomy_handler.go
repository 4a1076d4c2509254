package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koinonia/internal/repositories"
	"koinonia/internal/responses"
)

type TaxonomyHandler struct {
	taxonomyRepo *repositories.TaxonomyRepository
}

func NewTaxonomyHandler(taxonomyRepo *repositories.TaxonomyRepository) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyRepo: taxonomyRepo}
}

// GetTree handles GET /api/v1/taxonomy
func (h *TaxonomyHandler) GetTree(c *gin.Context) {
	tree, err := h.taxonomyRepo.Tree(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load taxonomy")
		return
	}

	responses.Success(c, http.StatusOK, tree, "Taxonomy retrieved successfully")
}

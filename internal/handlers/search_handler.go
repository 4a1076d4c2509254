package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"koinonia/internal/responses"
	"koinonia/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /api/v1/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Query parameter 'q' is required")
		return
	}

	results, err := h.searchService.Search(c.Request.Context(), q)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Search failed")
		return
	}

	responses.Success(c, http.StatusOK, results, "Search completed successfully")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koinonia/internal/repositories"
	"koinonia/internal/responses"
)

type ReadingHandler struct {
	entryRepo *repositories.EntryRepository
}

func NewReadingHandler(entryRepo *repositories.EntryRepository) *ReadingHandler {
	return &ReadingHandler{entryRepo: entryRepo}
}

// ListEntries handles GET /api/v1/readings with optional ?organ= and
// ?difficulty= filters.
func (h *ReadingHandler) ListEntries(c *gin.Context) {
	organ := c.Query("organ")
	difficulty := c.Query("difficulty")

	entries, err := h.entryRepo.ListFiltered(c.Request.Context(), organ, difficulty)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list reading entries")
		return
	}

	responses.Success(c, http.StatusOK, entries, "Reading entries retrieved successfully")
}

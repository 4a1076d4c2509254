package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"koinonia/internal/responses"
	"koinonia/internal/services"
)

type SyllabusHandler struct {
	syllabusService *services.SyllabusService
}

func NewSyllabusHandler(syllabusService *services.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{syllabusService: syllabusService}
}

// GeneratePath handles POST /api/v1/syllabus/paths
func (h *SyllabusHandler) GeneratePath(c *gin.Context) {
	var req services.GeneratePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	path, err := h.syllabusService.GenerateLearningPath(c.Request.Context(), req)
	if err != nil {
		log.Printf("ERROR in GeneratePath handler: %v", err)
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate learning path")
		return
	}

	responses.Success(c, http.StatusCreated, path, "Learning path generated successfully")
}

// GetPath handles GET /api/v1/syllabus/paths/:path_id
func (h *SyllabusHandler) GetPath(c *gin.Context) {
	pathID := c.Param("path_id")

	path, err := h.syllabusService.GetPath(c.Request.Context(), pathID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to fetch learning path")
		return
	}
	if path == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Learning path not found")
		return
	}

	responses.Success(c, http.StatusOK, path, "Learning path retrieved successfully")
}

// ListPaths handles GET /api/v1/syllabus/paths
func (h *SyllabusHandler) ListPaths(c *gin.Context) {
	paths, err := h.syllabusService.ListPaths(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list learning paths")
		return
	}

	responses.Success(c, http.StatusOK, paths, "Learning paths retrieved successfully")
}

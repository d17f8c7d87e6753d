package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/response"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/service"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/transcript"
)

// RequirementHandler serves the graduation requirement table.
type RequirementHandler struct {
	requirementService *service.RequirementService
}

// NewRequirementHandler creates a new RequirementHandler.
func NewRequirementHandler(requirementService *service.RequirementService) *RequirementHandler {
	return &RequirementHandler{requirementService: requirementService}
}

// GetRequirement godoc
// GET /api/v1/requirements?cohort=2023&major=소프트웨어전공
// Returns the requirement row for a cohort and major, applying the
// baseline-cohort fallback.
func (h *RequirementHandler) GetRequirement(c *gin.Context) {
	cohort, err := strconv.Atoi(c.DefaultQuery("cohort", "0"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	major := c.DefaultQuery("major", transcript.DefaultMajor)

	req, ok := h.requirementService.Resolve(cohort, major)
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrRequirementNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requirement": req})
}

// ListRequirements godoc
// GET /api/v1/requirements/all
// Returns every requirement row, for requirement-table consumers.
func (h *RequirementHandler) ListRequirements(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"requirements": h.requirementService.Table().Rows(),
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/response"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/service"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/transcript"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/validator"
)

// AnalysisHandler handles transcript analysis endpoints.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeTranscript godoc
// POST /api/v1/grades/analyze
// Accepts a transcript image and returns the normalized academic record
// with a degree-progress report.
func (h *AnalysisHandler) AnalyzeTranscript(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	report, err := h.analysisService.AnalyzeUpload(c.Request.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFile):
			response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrNoAnalysisData):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoAnalysisData)
		default:
			response.Fail(c, http.StatusBadGateway, response.ErrAnalyzerUnavailable)
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}

// ComputeProgress godoc
// POST /api/v1/grades/progress
// Recomputes the degree-progress report from client-supplied aggregates,
// optionally against a different major.
func (h *AnalysisHandler) ComputeProgress(c *gin.Context) {
	var req model.ProgressRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	agg := transcript.Aggregates{
		TotalCredits:     req.TotalCredits,
		MajorRequired:    req.MajorRequiredCredits,
		MajorElective:    req.MajorElectiveCredits,
		GeneralEducation: req.GeneralEducationCredits,
		AverageGPA:       req.AverageGPA,
	}

	report, _ := h.analysisService.ProgressFor(req.StudentID, req.Major, agg)
	response.Success(c, http.StatusOK, report)
}

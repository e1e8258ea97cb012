package api

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/generation"
	"alcyxob/lesson-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateHandler exposes the completion-backed endpoints.
type GenerateHandler struct {
	generationService service.GenerationService
}

func NewGenerateHandler(generationService service.GenerationService) *GenerateHandler {
	return &GenerateHandler{generationService: generationService}
}

// --- DTOs ---

// GenerateUnitFromPDFRequest carries a base64 document. Required fields are
// checked by the service so the error message stays uniform.
type GenerateUnitFromPDFRequest struct {
	PDFData    string `json:"pdfData"`
	FileName   string `json:"fileName"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"gradeLevel"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// GenerateUnitRequest is the manual unit form.
type GenerateUnitRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	GradeLevel  string `json:"gradeLevel" binding:"required"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	NumLessons  int    `json:"numLessons" binding:"omitempty,min=1,max=20"` // Defaults to 5
}

type GenerateLessonRequest struct {
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
}

type GenerateResourceContentRequest struct {
	Type        domain.ResourceType `json:"type" binding:"required,oneof=worksheet text quiz assignment exam"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
}

// Lesson and Unit are pointers so "required" rejects a missing object.
type GenerateEnhancementsRequest struct {
	Lesson *domain.Lesson         `json:"lesson" binding:"required"`
	Type   domain.EnhancementType `json:"type" binding:"required,oneof=differentiation technology assessment"`
}

type GenerateUnitImprovementsRequest struct {
	Unit *domain.UnitPlan `json:"unit" binding:"required"`
}

// SuggestionsResponse lists free-text suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// GenerateUnitFromPDF godoc
// @Summary Generate and store a unit plan from a document
// @Description Extracts the document text, asks the completion service for a unit plan, and stores the result.
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateUnitFromPDFRequest true "Base64 document and context"
// @Success 200 {object} domain.UnitPlan
// @Failure 400 {object} gin.H "Missing fields or unreadable document"
// @Failure 500 {object} gin.H "Completion service or storage failure"
// @Router /generate-unit-from-pdf [post]
func (h *GenerateHandler) GenerateUnitFromPDF(c *gin.Context) {
	var req GenerateUnitFromPDFRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.generationService.GenerateUnitFromDocument(c.Request.Context(), service.DocumentUnitRequest{
		PDFData:    req.PDFData,
		FileName:   req.FileName,
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// GenerateUnit godoc
// @Summary Propose standards and lessons for a unit form
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateUnitRequest true "Unit form"
// @Success 200 {object} service.GeneratedUnitContent
// @Router /generate-unit [post]
func (h *GenerateHandler) GenerateUnit(c *gin.Context) {
	var req GenerateUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.generationService.GenerateUnitContent(c.Request.Context(), generation.UnitFormInput{
		Title:       req.Title,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		NumLessons:  req.NumLessons,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// GenerateLesson godoc
// @Summary Generate a single lesson
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateLessonRequest true "Subject and topic"
// @Success 200 {object} domain.Lesson
// @Router /generate-lesson [post]
func (h *GenerateHandler) GenerateLesson(c *gin.Context) {
	var req GenerateLessonRequest
	if !bindJSON(c, &req) {
		return
	}
	lesson, err := h.generationService.GenerateLesson(c.Request.Context(), req.Subject, req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// GenerateResourceContent godoc
// @Summary Write the body of a lesson resource
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateResourceContentRequest true "Resource"
// @Success 200 {object} gin.H "{content}"
// @Router /generate-resource-content [post]
func (h *GenerateHandler) GenerateResourceContent(c *gin.Context) {
	var req GenerateResourceContentRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.generationService.GenerateResourceContent(c.Request.Context(), req.Type, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// GenerateEnhancements godoc
// @Summary Suggest lesson enhancements
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateEnhancementsRequest true "Lesson and enhancement type"
// @Success 200 {object} SuggestionsResponse
// @Router /generate-enhancements [post]
func (h *GenerateHandler) GenerateEnhancements(c *gin.Context) {
	var req GenerateEnhancementsRequest
	if !bindJSON(c, &req) {
		return
	}
	suggestions, err := h.generationService.GenerateEnhancements(c.Request.Context(), *req.Lesson, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// GenerateUnitImprovements godoc
// @Summary Suggest improvements for a unit plan
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateUnitImprovementsRequest true "Unit plan"
// @Success 200 {object} SuggestionsResponse
// @Router /generate-unit-improvements [post]
func (h *GenerateHandler) GenerateUnitImprovements(c *gin.Context) {
	var req GenerateUnitImprovementsRequest
	if !bindJSON(c, &req) {
		return
	}
	suggestions, err := h.generationService.GenerateUnitImprovements(c.Request.Context(), *req.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

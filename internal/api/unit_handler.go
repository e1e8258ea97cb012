package api

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UnitHandler serves unit plan CRUD.
type UnitHandler struct {
	unitService service.UnitService
}

// NewUnitHandler creates a new UnitHandler.
func NewUnitHandler(unitService service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// UnitListResponse wraps the unit list.
type UnitListResponse struct {
	Units []domain.UnitPlan `json:"units"`
}

// SuccessResponse acknowledges a delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ListUnits godoc
// @Summary List unit plans
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnitListResponse
// @Failure 500 {object} gin.H "Storage error"
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnitListResponse{Units: units})
}

// GetUnit godoc
// @Summary Get a unit plan
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} domain.UnitPlan
// @Failure 404 {object} gin.H "Unit not found"
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unit, err := h.unitService.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// CreateUnit godoc
// @Summary Create a unit plan
// @Description Stores the unit, generating an id when none is given.
// @Tags Units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unit body domain.UnitPlan true "Unit plan"
// @Success 200 {object} domain.UnitPlan
// @Failure 400 {object} gin.H "Missing title"
// @Failure 500 {object} gin.H "Storage error"
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req domain.UnitPlan
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.CreateUnit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// UpdateUnit godoc
// @Summary Replace a unit plan
// @Tags Units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param unit body domain.UnitPlan true "Unit plan"
// @Success 200 {object} domain.UnitPlan
// @Failure 400 {object} gin.H "Missing title"
// @Router /units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req domain.UnitPlan
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.UpdateUnit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// DeleteUnit godoc
// @Summary Delete a unit plan
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} SuccessResponse
// @Router /units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	if err := h.unitService.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetSourceDocumentURL godoc
// @Summary Presigned download URL for the unit's source document
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} gin.H "{url}"
// @Failure 400 {object} gin.H "Storage disabled"
// @Failure 404 {object} gin.H "No source document"
// @Router /units/{id}/source-url [get]
func (h *UnitHandler) GetSourceDocumentURL(c *gin.Context) {
	url, err := h.unitService.SourceDocumentURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

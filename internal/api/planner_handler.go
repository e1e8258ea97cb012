package api

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlannerHandler serves weekly planner slots and the dashboard summary.
type PlannerHandler struct {
	plannerService   service.PlannerService
	dashboardService service.DashboardService
}

func NewPlannerHandler(plannerService service.PlannerService, dashboardService service.DashboardService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService, dashboardService: dashboardService}
}

// ListSlots godoc
// @Summary List planner slots
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} object
// @Router /planner [get]
func (h *PlannerHandler) ListSlots(c *gin.Context) {
	slots, err := h.plannerService.ListSlots(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// UpsertSlot godoc
// @Summary Create or replace a planner slot
// @Description The slot is keyed by date and periodId; a later write with the same pair replaces it.
// @Tags Planner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slot body object true "Slot with date and periodId"
// @Success 200 {object} object
// @Failure 400 {object} gin.H "Missing date or periodId"
// @Router /planner [post]
func (h *PlannerHandler) UpsertSlot(c *gin.Context) {
	var slot domain.ScheduleSlot
	if !bindJSON(c, &slot) {
		return
	}
	stored, err := h.plannerService.UpsertSlot(c.Request.Context(), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// DeleteSlot godoc
// @Summary Delete a planner slot
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date"
// @Param periodId path string true "Period ID"
// @Success 200 {object} SuccessResponse
// @Router /planner/{date}/{periodId} [delete]
func (h *PlannerHandler) DeleteSlot(c *gin.Context) {
	if err := h.plannerService.DeleteSlot(c.Request.Context(), c.Param("date"), c.Param("periodId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Dashboard godoc
// @Summary Dashboard overview
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day to summarize (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.DashboardSummary
// @Router /dashboard [get]
func (h *PlannerHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

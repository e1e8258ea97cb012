package api

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LessonHandler serves the standalone lesson library.
type LessonHandler struct {
	lessonService service.LessonService
}

func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// ListLessons godoc
// @Summary List library lessons
// @Tags Lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Lesson
// @Router /lessons [get]
func (h *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := h.lessonService.ListLessons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// CreateLesson godoc
// @Summary Create a library lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lesson body domain.Lesson true "Lesson"
// @Success 200 {object} domain.Lesson
// @Failure 400 {object} gin.H "Missing title"
// @Router /lessons [post]
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req domain.Lesson
	if !bindJSON(c, &req) {
		return
	}
	lesson, err := h.lessonService.CreateLesson(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// UpdateLesson godoc
// @Summary Replace a library lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param lesson body domain.Lesson true "Lesson"
// @Success 200 {object} domain.Lesson
// @Router /lessons/{id} [put]
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var req domain.Lesson
	if !bindJSON(c, &req) {
		return
	}
	lesson, err := h.lessonService.UpdateLesson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson godoc
// @Summary Delete a library lesson
// @Tags Lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} SuccessResponse
// @Router /lessons/{id} [delete]
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	if err := h.lessonService.DeleteLesson(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

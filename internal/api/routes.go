package api

import (
	"alcyxob/lesson-planner/internal/logger"
	"alcyxob/lesson-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles what the HTTP layer depends on.
type Services struct {
	Units      service.UnitService
	Lessons    service.LessonService
	Planner    service.PlannerService
	Dashboard  service.DashboardService
	Generation service.GenerationService
}

// RouteOptions configures the route tree.
type RouteOptions struct {
	BasePath    string // e.g. "/api/v1"
	JWTSecret   string
	RequireAuth bool
}

// NewRouter builds the gin engine with recovery, request logging, open CORS and every route.
func NewRouter(log *logger.Logger, opts RouteOptions, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), CORSMiddleware())
	SetupRoutes(router, opts, svc)
	return router
}

func SetupRoutes(router *gin.Engine, opts RouteOptions, svc Services) {
	unitHandler := NewUnitHandler(svc.Units)
	lessonHandler := NewLessonHandler(svc.Lessons)
	plannerHandler := NewPlannerHandler(svc.Planner, svc.Dashboard)
	generateHandler := NewGenerateHandler(svc.Generation)

	base := router.Group(opts.BasePath)

	// Health stays reachable without a credential for load balancer probes.
	base.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := base.Group("")
	if opts.RequireAuth {
		protected.Use(AuthMiddleware(opts.JWTSecret))
	}
	{
		protected.GET("/dashboard", plannerHandler.Dashboard)

		unitGroup := protected.Group("/units")
		{
			unitGroup.GET("", unitHandler.ListUnits)
			unitGroup.POST("", unitHandler.CreateUnit)
			unitGroup.GET("/:id", unitHandler.GetUnit)
			unitGroup.PUT("/:id", unitHandler.UpdateUnit)
			unitGroup.DELETE("/:id", unitHandler.DeleteUnit)
			unitGroup.GET("/:id/source-url", unitHandler.GetSourceDocumentURL)
		}

		lessonGroup := protected.Group("/lessons")
		{
			lessonGroup.GET("", lessonHandler.ListLessons)
			lessonGroup.POST("", lessonHandler.CreateLesson)
			lessonGroup.PUT("/:id", lessonHandler.UpdateLesson)
			lessonGroup.DELETE("/:id", lessonHandler.DeleteLesson)
		}

		plannerGroup := protected.Group("/planner")
		{
			plannerGroup.GET("", plannerHandler.ListSlots)
			plannerGroup.POST("", plannerHandler.UpsertSlot)
			plannerGroup.DELETE("/:date/:periodId", plannerHandler.DeleteSlot)
		}

		protected.POST("/generate-unit-from-pdf", generateHandler.GenerateUnitFromPDF)
		protected.POST("/generate-unit", generateHandler.GenerateUnit)
		protected.POST("/generate-lesson", generateHandler.GenerateLesson)
		protected.POST("/generate-resource-content", generateHandler.GenerateResourceContent)
		protected.POST("/generate-enhancements", generateHandler.GenerateEnhancements)
		protected.POST("/generate-unit-improvements", generateHandler.GenerateUnitImprovements)
	}
}

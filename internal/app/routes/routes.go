package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/okan/courseatlas/internal/app/controllers"
	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	redditLinkController *controllers.RedditLinkController,
	syllabusController *controllers.SyllabusController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/sections", courseController.GetCourseSections)
	}

	v1.GET("/departments", courseController.ListDepartments)
	v1.GET("/sbcs", courseController.ListSBCs)
	v1.GET("/professors", professorController.GetProfessorByName)
	v1.GET("/reddit-links/:courseNumber", redditLinkController.GetLinksByCourseNumber)

	// Syllabus browsing is keyed by course; uploads are open to anyone
	v1.GET("/courses/:id/syllabi", syllabusController.GetSyllabiByCourseID)
	v1.POST("/syllabi", syllabusController.UploadSyllabus)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.POST("/professors/sync", professorController.SyncRatings)
		admin.POST("/reddit-links", redditLinkController.CreateLink)
		admin.DELETE("/reddit-links/:id", redditLinkController.DeleteLink)
		admin.DELETE("/syllabi/:id", syllabusController.DeleteSyllabus)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academia/internal/delivery/api/middleware"
	"academia/internal/delivery/api/router/handler"
	"academia/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	InstructorHandler *handler.InstructorHandler
	CategoryHandler   *handler.CategoryHandler
	CourseHandler     *handler.CourseHandler
	ModuleHandler     *handler.ModuleHandler
	LessonHandler     *handler.LessonHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	instructorHandler *handler.InstructorHandler
	categoryHandler   *handler.CategoryHandler
	courseHandler     *handler.CourseHandler
	moduleHandler     *handler.ModuleHandler
	lessonHandler     *handler.LessonHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		instructorHandler: params.InstructorHandler,
		categoryHandler:   params.CategoryHandler,
		courseHandler:     params.CourseHandler,
		moduleHandler:     params.ModuleHandler,
		lessonHandler:     params.LessonHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimiter:       params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{authenticated, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.POST("/refresh", r.authHandler.RefreshToken, r.rateLimiter.Limit)
		authGroup.POST("/logout", r.authHandler.Logout, r.rateLimiter.Limit)
		authGroup.GET("/email-exists", r.authHandler.EmailExists, r.rateLimiter.Limit)

		authGroup.GET("/sessions", r.authHandler.GetSessions, authenticated)
		authGroup.DELETE("/sessions/:id", r.authHandler.RevokeSession, authenticated)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, authenticated)
	}

	usersGroup := apiV1.Group("/users")
	usersGroup.Use(authenticated)
	{
		usersGroup.GET("/me", r.profileHandler.GetProfile)
		usersGroup.PATCH("/me", r.profileHandler.UpdateProfile)
		usersGroup.GET("/me/complete-profile", r.profileHandler.GetCompleteProfile)
		usersGroup.PUT("/me/complete-profile", r.profileHandler.CompleteProfile)
		usersGroup.PATCH("/me/complete-profile", r.profileHandler.CompleteProfile)
		usersGroup.GET("/me/profile-status", r.profileHandler.ProfileStatus)
		usersGroup.GET("/handle-availability", r.profileHandler.HandleAvailability)
	}

	adminInstructors := apiV1.Group("/admin/instructors")
	adminInstructors.Use(adminOnly...)
	{
		adminInstructors.POST("", r.instructorHandler.CreateInstructor)
		adminInstructors.GET("", r.instructorHandler.ListInstructors)
		adminInstructors.GET("/:id", r.instructorHandler.GetInstructor)
		adminInstructors.PUT("/:id", r.instructorHandler.UpdateInstructor)
		adminInstructors.PATCH("/:id", r.instructorHandler.UpdateInstructor)
		adminInstructors.DELETE("/:id", r.instructorHandler.DeactivateInstructor)
	}

	instructorsGroup := apiV1.Group("/instructors")
	{
		instructorsGroup.GET("", r.instructorHandler.ListPublicInstructors)
		instructorsGroup.GET("/:id", r.instructorHandler.GetPublicInstructor)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.GET("/:id/courses", r.categoryHandler.ListCategoryCourses)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, authenticated)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory, authenticated)
		categoriesGroup.PATCH("/:id", r.categoryHandler.UpdateCategory, authenticated)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeactivateCategory, authenticated)
	}

	coursesGroup := apiV1.Group("/courses")
	{
		coursesGroup.GET("", r.courseHandler.ListCourses)
		coursesGroup.GET("/:uuid", r.courseHandler.GetCourse)
		coursesGroup.GET("/:uuid/stats", r.courseHandler.GetCourseStats)
		coursesGroup.GET("/by-instructor/:id", r.courseHandler.ListCoursesByInstructor)
		coursesGroup.GET("/available-instructors", r.instructorHandler.ListAvailableInstructors, adminOnly...)
		coursesGroup.POST("", r.courseHandler.CreateCourse, adminOnly...)
		coursesGroup.PATCH("/:uuid", r.courseHandler.UpdateCourse, adminOnly...)
		coursesGroup.DELETE("/:uuid", r.courseHandler.DeactivateCourse, adminOnly...)
		coursesGroup.POST("/full", r.courseHandler.CreateFullCourse, adminOnly...)
		coursesGroup.PUT("/:uuid/full", r.courseHandler.ReplaceFullCourse, adminOnly...)
		coursesGroup.PATCH("/:uuid/full", r.courseHandler.ReplaceFullCourse, adminOnly...)
	}

	modulesGroup := apiV1.Group("/modules")
	{
		modulesGroup.GET("", r.moduleHandler.ListModules)
		modulesGroup.GET("/:id", r.moduleHandler.GetModule)
		modulesGroup.POST("", r.moduleHandler.CreateModule, adminOnly...)
		modulesGroup.POST("/with-lessons", r.moduleHandler.CreateModuleWithLessons, adminOnly...)
		modulesGroup.PATCH("/:id", r.moduleHandler.UpdateModule, adminOnly...)
		modulesGroup.DELETE("/:id", r.moduleHandler.DeactivateModule, adminOnly...)
	}

	lessonsGroup := apiV1.Group("/lessons")
	{
		lessonsGroup.GET("", r.lessonHandler.ListLessons)
		lessonsGroup.GET("/:id", r.lessonHandler.GetLesson)
		lessonsGroup.POST("", r.lessonHandler.CreateLesson, adminOnly...)
		lessonsGroup.PATCH("/:id", r.lessonHandler.UpdateLesson, adminOnly...)
		lessonsGroup.DELETE("/:id", r.lessonHandler.DeactivateLesson, adminOnly...)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/config"
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/handlers"
	"github.com/hyuga/course-scheduler-api/internal/middleware"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"github.com/hyuga/course-scheduler-api/internal/services"
)

// defaultSettings are seeded on startup so admin reads never start empty.
var defaultSettings = map[string]string{
	"registration_open": "true",
	"announcement":      "",
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// External identity provider collaborators
	verifier := auth.NewGoogleVerifier(cfg.GoogleClientID, cfg.VerifyTimeout)
	identityAdmin := auth.NewRESTIdentityAdmin(cfg.IdentityAPIURL, cfg.IdentityAPIKey, cfg.VerifyTimeout)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	shareRepo := repository.NewShareTokenRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	if err := settingRepo.Seed(defaultSettings); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	// Services
	userService := services.NewUserService(userRepo, cfg.IsAdminEmail)
	courseService := services.NewCourseService(courseRepo, userService)
	taskService := services.NewTaskService(taskRepo)
	shareService := services.NewShareService(shareRepo, taskRepo, courseRepo, userRepo)
	adminService := services.NewAdminService(userRepo, settingRepo, identityAdmin)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(courseService)
	taskHandler := handlers.NewTaskHandler(taskService)
	shareHandler := handlers.NewShareHandler(shareService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Course Scheduler API is running",
		})
	})

	// Public shared calendar (token is the sole access control)
	r.GET("/shared/:token", shareHandler.GetSharedCalendar)

	requireAuth := middleware.RequireAuth(verifier)

	// Course routes (protected)
	courses := r.Group("/courses")
	courses.Use(requireAuth)
	{
		courses.GET("", courseHandler.ListCourses)
		courses.POST("", courseHandler.CreateCourse)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	// Profile and preference routes (protected)
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.POST("", userHandler.CreateProfile)
		users.GET("/settings", userHandler.GetSettings)
		users.PATCH("/settings", userHandler.UpdateSettings)
	}

	// Share token creation (protected)
	r.POST("/share-schedule", requireAuth, shareHandler.ShareSchedule)

	// Admin routes (protected, persisted-role gated)
	admin := r.Group("/admin")
	admin.Use(requireAuth, middleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:uid/active", adminHandler.SetUserActive)
		admin.POST("/promote/:uid", adminHandler.PromoteToAdmin)
		admin.DELETE("/users/:uid", adminHandler.DeleteUser)
		admin.POST("/users/:uid/reset-calendar", adminHandler.ResetUserCalendar)
		admin.GET("/settings", adminHandler.ListSettings)
		admin.GET("/settings/:key", adminHandler.GetSetting)
		admin.PATCH("/settings/:key", adminHandler.UpdateSetting)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

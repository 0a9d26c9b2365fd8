package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskmaster/config"
	"taskmaster/handler"
	"taskmaster/middleware"
	"taskmaster/repository"
	"taskmaster/usecase"
	"taskmaster/utils"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file found, using process environment")
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter(statsCache *usecase.StatsCache) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))
	router.Use(middleware.MetricsMiddleware())

	// Repositories
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	subjectsRepo := repository.GetSubjectsRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)

	// Services
	conflictsService := usecase.NewConflictsService(tasksRepo, subjectsRepo)
	tasksService := usecase.NewTasksService(tasksRepo, conflictsService, statsCache)
	timetableService := usecase.NewTimetableService(subjectsRepo, sessionsRepo, statsCache)
	statsService := usecase.NewStatsService(tasksRepo, subjectsRepo, statsCache)
	assistantService := usecase.NewAssistantService(config.LoadAssistantConfig())

	// Handlers
	tasksHandler := handler.NewTasksHandler(tasksService, conflictsService)
	subjectsHandler := handler.NewSubjectsHandler(timetableService)
	conflictsHandler := handler.NewConflictsHandler(conflictsService)
	calendarHandler := handler.NewCalendarHandler(tasksService, timetableService)
	statsHandler := handler.NewStatsHandler(statsService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	healthHandler := handler.NewHealthHandler(utils.MongoClient)

	// Public routes
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/health", healthHandler.HealthCheck)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		todos := protected.Group("/todos")
		{
			todos.GET("", tasksHandler.GetUserTasks)
			todos.POST("", tasksHandler.CreateTask)
			todos.PUT("/:id", tasksHandler.UpdateTask)
			todos.DELETE("/:id", tasksHandler.DeleteTask)
			todos.POST("/:id/toggle", tasksHandler.ToggleTaskComplete)
			todos.POST("/check-conflicts", tasksHandler.CheckConflicts)
		}

		subjects := protected.Group("/subjects")
		{
			subjects.GET("", subjectsHandler.GetUserSubjects)
			subjects.POST("", subjectsHandler.CreateSubject)
			subjects.PUT("/:id", subjectsHandler.UpdateSubject)
			subjects.DELETE("/:id", subjectsHandler.DeleteSubject)
			subjects.GET("/:id/sessions", subjectsHandler.GetSubjectSessions)
			subjects.POST("/:id/regenerate", subjectsHandler.RegenerateSessions)
		}

		protected.GET("/conflicts", conflictsHandler.GetConflicts)

		calendar := protected.Group("/calendar")
		calendar.Use(middleware.CacheControlMiddleware("private, max-age=60"))
		{
			calendar.GET("/week", calendarHandler.WeekView)
			calendar.GET("/month", calendarHandler.MonthView)
			calendar.GET("/export.ics", calendarHandler.ExportICS)
		}

		protected.GET("/stats/dashboard", statsHandler.GetDashboardStats)
		protected.POST("/assistant/parse", assistantHandler.ParseTasks)
	}

	return router
}

func main() {
	// Stats cache is optional; without Redis the dashboard recomputes per
	// request.
	var statsCache *usecase.StatsCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := usecase.NewStatsCache(redisURL, 5*time.Minute)
		if err != nil {
			log.Printf("Stats cache disabled: %v", err)
		} else {
			statsCache = cache
		}
	}

	dbConfig := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	router := setupRouter(statsCache)

	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	reminder := usecase.NewReminderService(tasksRepo, config.LoadReminderConfig())
	if err := reminder.Start(); err != nil {
		log.Printf("Reminder service disabled: %v", err)
	}
	defer reminder.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

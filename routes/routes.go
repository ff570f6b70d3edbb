package routes

import (
	"net/http"
	"time"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/controllers"
	"github.com/Deycylopez14/Hidratacion/middlewares"
	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the long-lived components the handlers need.
type Deps struct {
	Scheduler *services.ReminderScheduler
	Push      *services.PushService
	Hub       *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://hidratacion.vercel.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reminderCtrl := controllers.NewReminderController(d.Scheduler)
	deviceCtrl := controllers.NewDeviceController(d.Push)
	realtimeCtrl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.PUT("/notifications", controllers.ToggleNotifications)
	}

	hydration := r.Group("/hydration")
	hydration.Use(middlewares.AuthMiddleware())
	{
		hydration.POST("", controllers.AddHydration)
		hydration.GET("/today", controllers.GetToday)
		hydration.GET("/by-date", controllers.GetByDate)
		hydration.GET("/stats", controllers.GetWeeklyStats)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.UpdateGoals)
		goals.GET("/suggested", controllers.GetSuggestedGoal)
	}

	history := r.Group("/history")
	history.Use(middlewares.AuthMiddleware())
	{
		history.GET("", controllers.GetHistory)
		history.GET("/export", controllers.ExportHistory)
		history.DELETE("/:id", controllers.DeleteRecord)
		history.DELETE("", controllers.DeleteAllHistory)
	}

	reminders := r.Group("/reminders")
	reminders.Use(middlewares.AuthMiddleware())
	{
		reminders.GET("", reminderCtrl.GetSettings)
		reminders.PUT("", reminderCtrl.UpdateSettings)
		reminders.GET("/alerts", reminderCtrl.GetAlerts)
	}

	push := r.Group("/push")
	push.Use(middlewares.AuthMiddleware())
	{
		push.POST("/devices", deviceCtrl.Register)
		push.POST("/subscribe", deviceCtrl.Subscribe)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtrl.AlertsWS)
	}

	// Seeding and push-delivery checks for local work, refused in production.
	if config.Env() != "production" {
		dev := r.Group("/dev")
		dev.Use(middlewares.AuthMiddleware())
		{
			dev.POST("/hydration", controllers.SimulatedIntake)
			dev.POST("/push-test", controllers.TestPush)
		}
	}

	return r
}

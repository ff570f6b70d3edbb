package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deycylopez14/Hidratacion/cache"
	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/routes"
	"github.com/Deycylopez14/Hidratacion/services"
	"github.com/Deycylopez14/Hidratacion/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	utils.Logger.Info("starting_application", zap.String("env", config.Env()))

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	// Cache is optional; a missing Redis just disables stats caching.
	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Warn("redis_unavailable", zap.Error(err))
	}
	defer cache.Close()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		utils.Logger.Fatal("push_service_init_failed", zap.Error(err))
	}
	services.InitAlertDeps(config.DB, hub, push)

	scheduler := services.NewReminderScheduler(func(userID uint, title, body string, data map[string]string) {
		services.EmitAlert(userID, "reminder", title, body, data)
	})
	if err := scheduler.Restore(); err != nil {
		utils.Logger.Error("reminder_restore_failed", zap.Error(err))
	}
	defer scheduler.Shutdown()

	if config.Env() == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.SetupRouter(routes.Deps{
		Scheduler: scheduler,
		Push:      push,
		Hub:       hub,
	})

	startServer(r)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info("http_server_listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
}

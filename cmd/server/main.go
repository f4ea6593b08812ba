package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobport/internal/api"
	"jobport/internal/api/middleware"
	"jobport/internal/database"
	"jobport/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	auditPool := appFactory.GetAuditWorkerPool()
	auditPool.Start()
	defer auditPool.Stop()

	reconciler := appFactory.GetCountReconciler()
	reconciler.Start()
	defer reconciler.Stop()

	authService := appFactory.GetAuthService()
	userService := appFactory.GetUserService()
	jobService := appFactory.GetJobService()
	applicationService := appFactory.GetApplicationService()
	auditLogService := appFactory.GetAuditLogService()

	auth := middleware.Auth(authService)

	authHandler := api.NewAuthHandler(authService, userService, auth, log)
	userHandler := api.NewUserHandler(userService, auth, log)
	jobHandler := api.NewJobHandler(jobService, applicationService, auth, log)
	applicationHandler := api.NewApplicationHandler(applicationService, auth, log)
	auditLogHandler := api.NewAuditLogHandler(auditLogService, auth, log)
	cacheHandler := api.NewCacheHandler(appFactory.GetCache(), appFactory.GetWarmUpManager(), auth, log)
	healthHandler := api.NewHealthHandler(db, appFactory.GetRedisClient(), appFactory.GetCache(), log)

	mux := http.NewServeMux()

	authHandler.RegisterRoutes(mux)
	userHandler.RegisterRoutes(mux)
	jobHandler.RegisterRoutes(mux)
	applicationHandler.RegisterRoutes(mux)
	auditLogHandler.RegisterRoutes(mux)
	cacheHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	warmUpCtx, warmUpCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := appFactory.GetWarmUpManager().WarmUpJobs(warmUpCtx); err != nil {
		log.Warn("Cache warm-up tamamlanamadı", map[string]interface{}{"error": err.Error()})
	}
	warmUpCancel()

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.MetricsMiddleware(mux),
	}

	go func() {
		log.Info("HTTP sunucusu başlatılıyor", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Sunucu kapatılıyor...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Sunucu kapatılırken hata oluştu", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Sunucu başarıyla kapatıldı", map[string]interface{}{})
}

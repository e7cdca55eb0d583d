package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/hr-records-api/api/swagger"
	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/internal/handler"
	"github.com/noah-isme/hr-records-api/internal/repository"
	"github.com/noah-isme/hr-records-api/internal/service"
	"github.com/noah-isme/hr-records-api/internal/validation"
	"github.com/noah-isme/hr-records-api/pkg/cache"
	"github.com/noah-isme/hr-records-api/pkg/clock"
	"github.com/noah-isme/hr-records-api/pkg/config"
	"github.com/noah-isme/hr-records-api/pkg/database"
	"github.com/noah-isme/hr-records-api/pkg/logger"
)

// @title HR Records API
// @version 1.0.0
// @description Employee records with request validation and audit provenance.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, employee cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	var clk clock.Clock = clock.System{}
	if cfg.Clock.FixedAt != nil {
		clk = clock.NewFixed(*cfg.Clock.FixedAt)
		logr.Warn("clock pinned", zap.Time("at", *cfg.Clock.FixedAt))
	}

	metrics := service.NewMetricsService()
	stamper := audit.NewStamper(clk, audit.Actors{Create: cfg.Audit.CreateActor, Update: cfg.Audit.UpdateActor})
	uow := repository.NewUnitOfWorkFactory(db, stamper, metrics, logr)

	employeeRepo := repository.NewEmployeeRepository(db)
	benefitRepo := repository.NewBenefitRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.EmployeeTTL, logr, redisClient != nil)

	registry := validation.NewRegistry()
	service.RegisterValidators(registry, validation.NewStructRules(nil), employeeRepo, benefitRepo)
	executor := validation.NewExecutor(registry,
		validation.WithParallel(cfg.Validation.Parallel),
		validation.WithLogger(logr),
		validation.WithObserver(metrics),
	)

	checks := map[string]handler.ReadinessCheck{
		"database": db.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = cacheRepo.Ping
	}

	router := handler.NewRouter(handler.RouterDeps{
		Config:    cfg,
		Logger:    logr,
		Executor:  executor,
		Employees: service.NewEmployeeService(employeeRepo, uow, cacheSvc, cfg.Cache.EmployeeTTL, logr),
		Benefits:  service.NewBenefitService(benefitRepo, employeeRepo, uow, logr),
		Exports:   service.NewExportService(employeeRepo, clk, logr),
		Metrics:   metrics,
		Checks:    checks,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "validators", registry.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/courses-api/api/swagger"
	"github.com/noah-isme/courses-api/internal/handler"
	"github.com/noah-isme/courses-api/internal/middleware"
	"github.com/noah-isme/courses-api/internal/repository"
	"github.com/noah-isme/courses-api/internal/service"
	"github.com/noah-isme/courses-api/pkg/config"
	"github.com/noah-isme/courses-api/pkg/database"
	"github.com/noah-isme/courses-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/courses-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/courses-api/pkg/middleware/requestid"
)

// @title Courses API
// @version 1.0.0
// @description Courses, students and course participation
// @BasePath /api
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
		logr.Info("database schema up to date")
	}

	var metricsSvc *service.MetricsService
	var metricsHTTP http.Handler
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		metricsHTTP = metricsSvc.Handler()
	}

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	participantRepo := repository.NewCourseParticipantRepository(db)
	reportRepo := repository.NewReportRepository(db)

	validate := service.NewValidator()
	courseSvc := service.NewCourseService(courseRepo, participantRepo, validate, logr, service.CourseServiceConfig{
		ParticipantsLimit: cfg.Courses.ParticipantsLimit,
		MirrorLastName:    cfg.Courses.MirrorParticipantLastName,
	})
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(courseRepo, studentRepo, participantRepo, metricsSvc, logr)
	reportSvc := service.NewReportService(reportRepo, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Courses:     handler.NewCourseHandler(courseSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Reports:     handler.NewReportHandler(reportSvc),
		Students:    handler.NewStudentHandler(studentSvc),
		Metrics:     handler.NewMetricsHandler(metricsHTTP, db),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

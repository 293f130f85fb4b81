package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/database"
	"github.com/campushq/advising-backend/internal/handler"
	"github.com/campushq/advising-backend/internal/logger"
	"github.com/campushq/advising-backend/internal/repository"
	"github.com/campushq/advising-backend/internal/router"
	"github.com/campushq/advising-backend/internal/service"
	"github.com/campushq/advising-backend/internal/validator"
	"github.com/campushq/advising-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Advising Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	departmentRepo := repository.NewDepartmentRepository(pool)
	semesterRepo := repository.NewSemesterRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	offeringRepo := repository.NewOfferingRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	departmentService := service.NewDepartmentService(departmentRepo, log)
	semesterService := service.NewSemesterService(semesterRepo, log)
	classroomService := service.NewClassroomService(classroomRepo, log)
	courseService := service.NewCourseService(courseRepo, log)
	facultyService := service.NewFacultyService(facultyRepo, authService, log)
	studentService := service.NewStudentService(studentRepo, authService, log)
	adminService := service.NewAdminService(adminRepo, authService)
	offeringService := service.NewOfferingService(offeringRepo, semesterRepo, courseRepo, rdb, cfg, log)
	eventSink := service.NewRedisEventSink(rdb, log)
	enrollmentService := service.NewEnrollmentService(
		offeringRepo, enrollmentRepo, semesterRepo, studentRepo, eventSink, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, studentService, facultyService, adminService),
		Enrollment:  handler.NewEnrollmentHandler(enrollmentService, offeringService),
		Faculty:     handler.NewFacultyHandler(enrollmentService),
		MonitorWS:   handler.NewMonitorWSHandler(rdb, offeringService, log, cfg.AllowedOrigins),
		Department:  handler.NewDepartmentHandler(departmentService),
		Semester:    handler.NewSemesterHandler(semesterService),
		Classroom:   handler.NewClassroomHandler(classroomService),
		Course:      handler.NewCourseHandler(courseService),
		Offering:    handler.NewOfferingHandler(offeringService),
		StudentMgmt: handler.NewStudentManagementHandler(studentService, authService),
		FacultyMgmt: handler.NewFacultyManagementHandler(facultyService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	auditWorker := worker.NewAuditWorker(pool, rdb, log)
	go auditWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the audit worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

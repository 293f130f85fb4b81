package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/handler"
	"github.com/campushq/advising-backend/internal/middleware"
	"github.com/campushq/advising-backend/internal/response"
	"github.com/campushq/advising-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Enrollment  *handler.EnrollmentHandler
	Faculty     *handler.FacultyHandler
	MonitorWS   *handler.MonitorWSHandler
	Department  *handler.DepartmentHandler
	Semester    *handler.SemesterHandler
	Classroom   *handler.ClassroomHandler
	Course      *handler.CourseHandler
	Offering    *handler.OfferingHandler
	StudentMgmt *handler.StudentManagementHandler
	FacultyMgmt *handler.FacultyManagementHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/student/login", handlers.Auth.StudentLogin)
		auth.POST("/faculty/login", handlers.Auth.FacultyLogin)
		auth.POST("/admin/login", handlers.Auth.AdminLogin)

		// Authenticated profile routes
		auth.POST("/student/logout", middleware.RequireStudentJWT(authService), handlers.Auth.StudentLogout)
		auth.GET("/student/me", middleware.RequireStudentJWT(authService), handlers.Auth.GetStudentProfile)
		auth.GET("/faculty/me", middleware.RequireFacultyJWT(authService), handlers.Auth.GetFacultyProfile)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetAdminProfile)
	}

	// ─── 2. Advising Group (Student JWT + Single Device) ───────────────
	advisingAPI := router.Group("/api/v1/advising")
	advisingAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		advisingAPI.GET("/offerings", handlers.Enrollment.ListOfferings)
		advisingAPI.GET("/me", handlers.Enrollment.MyEnrollment)
		advisingAPI.POST("/enroll", handlers.Enrollment.Enroll)
		advisingAPI.POST("/withdraw", handlers.Enrollment.Withdraw)
	}

	// ─── 3. Faculty Group (Faculty JWT) ────────────────────────────────
	facultyAPI := router.Group("/api/v1/faculty")
	facultyAPI.Use(middleware.RequireFacultyJWT(authService))
	{
		facultyAPI.GET("/semesters/:semesterId/courses", handlers.Faculty.MyCourses)
		facultyAPI.GET("/semesters/:semesterId/offerings/:offeringId/roster", handlers.Faculty.OfferingRoster)
	}

	// ─── 4. WebSocket Group (Faculty WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireFacultyWSAuth(authService))
	{
		ws.GET("/faculty/offerings/:offeringId/monitor", handlers.MonitorWS.SeatMonitorStream)
	}

	// ─── 5. Shared (Public) ────────────────────────────────────────────
	router.GET("/api/v1/semesters/current", handlers.Semester.Current)

	// ─── 6. Admin Group (Admin JWT) ────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Department catalog
		departmentsGroup := adminAPI.Group("/departments")
		{
			departmentsGroup.GET("", handlers.Department.List)
			departmentsGroup.POST("", handlers.Department.Create)
			departmentsGroup.GET("/:id", handlers.Department.Get)
			departmentsGroup.PUT("/:id", handlers.Department.Update)
			departmentsGroup.DELETE("/:id", handlers.Department.Delete)
		}

		// Semester lifecycle
		semestersGroup := adminAPI.Group("/semesters")
		{
			semestersGroup.GET("", handlers.Semester.List)
			semestersGroup.POST("", handlers.Semester.Create)
			semestersGroup.GET("/:id", handlers.Semester.Get)
		}

		// Classroom catalog
		classroomsGroup := adminAPI.Group("/classrooms")
		{
			classroomsGroup.GET("", handlers.Classroom.List)
			classroomsGroup.POST("", handlers.Classroom.Create)
			classroomsGroup.PUT("/:id", handlers.Classroom.Update)
			classroomsGroup.DELETE("/:id", handlers.Classroom.Delete)
		}

		// Course catalog
		coursesGroup := adminAPI.Group("/courses")
		{
			coursesGroup.GET("", handlers.Course.List)
			coursesGroup.POST("", handlers.Course.Create)
			coursesGroup.GET("/:id", handlers.Course.Get)
			coursesGroup.PUT("/:id", handlers.Course.Update)
			coursesGroup.DELETE("/:id", handlers.Course.Delete)
		}

		// Offering publication
		offeringsGroup := adminAPI.Group("/offerings")
		{
			offeringsGroup.GET("", handlers.Offering.List)
			offeringsGroup.POST("", handlers.Offering.Create)
			offeringsGroup.GET("/:id", handlers.Offering.Get)
			offeringsGroup.PUT("/:id", handlers.Offering.Update)
		}

		// Student account management
		studentsGroup := adminAPI.Group("/students")
		{
			studentsGroup.GET("", handlers.StudentMgmt.List)
			studentsGroup.POST("", handlers.StudentMgmt.Create)
			studentsGroup.GET("/:id", handlers.StudentMgmt.Get)
			studentsGroup.PUT("/:id", handlers.StudentMgmt.Update)
			studentsGroup.DELETE("/:id", handlers.StudentMgmt.Delete)
			studentsGroup.POST("/:id/reset-session", handlers.StudentMgmt.ResetSession)
		}

		// Faculty account management
		facultyGroup := adminAPI.Group("/faculty")
		{
			facultyGroup.GET("", handlers.FacultyMgmt.List)
			facultyGroup.POST("", handlers.FacultyMgmt.Create)
			facultyGroup.GET("/:id", handlers.FacultyMgmt.Get)
			facultyGroup.PUT("/:id", handlers.FacultyMgmt.Update)
			facultyGroup.DELETE("/:id", handlers.FacultyMgmt.Delete)
		}
	}

	return router
}

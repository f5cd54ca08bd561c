package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peopleops/onboarding-system/docs"
	"github.com/peopleops/onboarding-system/internal/api/handler"
	"github.com/peopleops/onboarding-system/internal/api/middleware"
	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
	"github.com/peopleops/onboarding-system/internal/core/service"
	"github.com/peopleops/onboarding-system/internal/infrastructure/config"
	"github.com/peopleops/onboarding-system/internal/infrastructure/credentials"
	mongodb "github.com/peopleops/onboarding-system/internal/infrastructure/db/mongo"
	redislock "github.com/peopleops/onboarding-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is built and started by the caller so its worker lifecycle is
// tied to the process, not to the router.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("onboarding"))

	// --- Repositories ---
	applicantRepo := mongodb.NewApplicantRepository(db)
	recordRepo := mongodb.NewOnboardingRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	// --- Infrastructure ---
	locks := redislock.NewTransitionLock(rdb)
	creds := credentials.NewIssuer(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	applicantService := service.NewApplicantService(applicantRepo, log)
	provisioner := service.NewEmployeeProvisioner(employeeRepo, applicantRepo, creds, log)
	onboardingService := service.NewOnboardingService(applicantRepo, recordRepo, provisioner, locks, notifier, cfg.Steps, log)
	rejectionService := service.NewRejectionService(applicantRepo, recordRepo, employeeRepo, creds, locks, notifier, log)
	archiveService := service.NewArchiveService(applicantRepo, locks, notifier, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	applicantHandler := handler.NewApplicantHandler(applicantService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService, provisioner)
	lifecycleHandler := handler.NewLifecycleHandler(rejectionService, archiveService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Operational surface (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Applicant lifecycle (HR staff only) ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret), middleware.RBAC(domain.RoleAdmin, domain.RoleHR))

	v1.POST("/applicants", applicantHandler.Create)
	v1.GET("/applicants", applicantHandler.List)
	v1.GET("/applicants/:id", applicantHandler.Get)

	v1.POST("/applicants/:id/accept", onboardingHandler.Accept)
	v1.PATCH("/applicants/:id/onboarding/steps", onboardingHandler.UpdateStep)
	v1.GET("/applicants/:id/onboarding", onboardingHandler.GetRecord)
	v1.GET("/applicants/:id/employee", onboardingHandler.GetEmployee)

	v1.POST("/applicants/:id/reject", lifecycleHandler.RejectEarly)
	v1.POST("/applicants/:id/onboarding/reject", lifecycleHandler.RejectDuringOnboarding)
	v1.POST("/applicants/:id/employment/reject", lifecycleHandler.RejectEmployee)
	v1.POST("/applicants/:id/archive", lifecycleHandler.Archive)
	v1.POST("/applicants/:id/unarchive", lifecycleHandler.Unarchive)

	return e
}

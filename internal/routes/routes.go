package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/cache"
	"github.com/barbertime/agenda-api/internal/config"
	"github.com/barbertime/agenda-api/internal/handlers"
	infraRepo "github.com/barbertime/agenda-api/internal/infra/repository"
	"github.com/barbertime/agenda-api/internal/middleware"
	"github.com/barbertime/agenda-api/internal/timezone"
	ucAppointment "github.com/barbertime/agenda-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailability(
		cfg.RedisAddr,
		time.Duration(cfg.AvailabilityTTLS)*time.Second,
	)

	clock := timezone.Clock{TZ: cfg.Timezone}

	settings := ucAppointment.AgendaSettings{
		Open:        cfg.AgendaOpen,
		Close:       cfg.AgendaClose,
		StepMinutes: cfg.SlotStepMinutes,
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		clock,
		auditDispatcher,
		availabilityCache,
		settings,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		settings,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		clock,
		auditDispatcher,
		availabilityCache,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	dashboardUC := ucAppointment.NewDashboardSummary(
		appointmentRepo,
		clock,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher, availabilityCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		availabilityUC,
		changeStatusUC,
		listByDateUC,
		listByMonthUC,
		cfg.Timezone,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Overview)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.POST("/professionals", professionalHandler.Create)
		api.PATCH("/professionals/:id", professionalHandler.Update)

		api.GET("/professionals/:id/working-hours", workingHoursHandler.Get)
		api.PUT("/professionals/:id/working-hours", workingHoursHandler.Update)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

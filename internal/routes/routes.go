package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/internal/cache"
	"github.com/agendaja/agenda-api/internal/config"
	"github.com/agendaja/agenda-api/internal/handlers"
	infraRepo "github.com/agendaja/agenda-api/internal/infra/repository"
	ucAppointment "github.com/agendaja/agenda-api/internal/usecase/appointment"
	ucReport "github.com/agendaja/agenda-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	reportCache := cache.New(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.RedisDB,
		cfg.ReportCacheTTL,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(bookingRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(bookingRepo)
	reportGenerator := ucReport.NewGenerator(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	professionalHandler := handlers.NewProfessionalHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateAppointmentUC,
	)
	reportHandler := handlers.NewReportHandler(reportGenerator, reportCache, logger)

	// ======================================================
	// API
	// ======================================================
	v1 := r.Group("/v1/profissional")
	{
		v1.POST("", professionalHandler.Create)
		v1.GET("/:id", professionalHandler.Get)
		v1.PUT("/:id", professionalHandler.Update)

		// ------------------------------
		// CLIENTES
		// ------------------------------
		v1.POST("/:id/clientes", clientHandler.Create)
		v1.GET("/:id/clientes", clientHandler.List)
		v1.GET("/:id/clientes/:clientId", clientHandler.Get)
		v1.PUT("/:id/clientes/:clientId", clientHandler.Update)
		v1.DELETE("/:id/clientes/:clientId", clientHandler.Delete)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		v1.POST("/:id/agendamentos", appointmentHandler.Create)
		v1.GET("/:id/agendamentos", appointmentHandler.List)
		v1.GET("/:id/agendamentos/:appointmentId", appointmentHandler.Get)
		v1.PUT("/:id/agendamentos/:appointmentId", appointmentHandler.Update)
		v1.DELETE("/:id/agendamentos/:appointmentId", appointmentHandler.Delete)

		// ------------------------------
		// RELATÓRIOS
		// ------------------------------
		v1.GET("/:id/relatorios", reportHandler.Get)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

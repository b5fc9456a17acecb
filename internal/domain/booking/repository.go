package booking

import (
	"context"
	"time"

	"github.com/agendaja/agenda-api/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		professionalID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		professionalID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// ListOverlapCandidates fetches every appointment whose stored
	// interval intersects [start, end); the precise half-open overlap
	// decision stays in application code.
	ListOverlapCandidates(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		fields []string,
	) error

	UpdateAppointmentRescheduled(
		ctx context.Context,
		ap *models.Appointment,
		fields []string,
	) error

	DeleteAppointment(
		ctx context.Context,
		professionalID uint,
		appointmentID uint,
	) error
}

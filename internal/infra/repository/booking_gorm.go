package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendaja/agenda-api/internal/domain/booking"
	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
	"github.com/agendaja/agenda-api/internal/scheduling"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Hours").
		First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	professionalID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time >= ? AND end_time <= ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// ListOverlapCandidates fetches by true interval intersection rather
// than day bounds, so a booking that straddles the window edge is never
// missed.
func (r *BookingGormRepository) ListOverlapCandidates(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID, end, start,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// CreateAppointment re-checks the overlap under a row lock inside one
// transaction, so two concurrent bookings for the same professional
// serialize at the store instead of both passing the use-case check.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var candidates []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND start_time < ? AND end_time > ?",
				ap.ProfessionalID, ap.Window.End, ap.Window.Start,
			).
			Find(&candidates).Error; err != nil {
			return err
		}

		if conflict := scheduling.FindOverlap(candidates, ap.Window.Start, ap.Window.End, 0); conflict != nil {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	fields []string,
) error {

	return r.db.WithContext(ctx).
		Model(ap).
		Select(fields).
		Updates(*ap).Error
}

// UpdateAppointmentRescheduled is the window-changing variant of
// UpdateAppointment: like CreateAppointment it re-checks the overlap
// under lock, excluding the appointment itself.
func (r *BookingGormRepository) UpdateAppointmentRescheduled(
	ctx context.Context,
	ap *models.Appointment,
	fields []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var candidates []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND start_time < ? AND end_time > ?",
				ap.ProfessionalID, ap.Window.End, ap.Window.Start,
			).
			Find(&candidates).Error; err != nil {
			return err
		}

		if conflict := scheduling.FindOverlap(candidates, ap.Window.Start, ap.Window.End, ap.ID); conflict != nil {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Model(ap).Select(fields).Updates(*ap).Error
	})
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

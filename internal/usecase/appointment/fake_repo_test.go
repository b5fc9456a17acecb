package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/internal/models"
)

// fakeRepo is an in-memory Repository for exercising the use cases
// without a database. The write methods only record what was asked.
type fakeRepo struct {
	prof     *models.Professional
	existing []models.Appointment

	nextID uint

	created         *models.Appointment
	updated         *models.Appointment
	updatedFields   []string
	updateCalls     int
	rescheduleCalls int
	overlapQueries  int
	createErr       error
	updateErr       error
}

func (f *fakeRepo) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	if f.prof == nil || f.prof.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.prof, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, professionalID, appointmentID uint) (*models.Appointment, error) {
	for i := range f.existing {
		ap := f.existing[i]
		if ap.ID == appointmentID && ap.ProfessionalID == professionalID {
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAppointments(_ context.Context, professionalID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.existing {
		if ap.ProfessionalID == professionalID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.existing {
		if ap.ProfessionalID == professionalID &&
			!ap.Window.Start.Before(start) && !ap.Window.End.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOverlapCandidates(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	f.overlapQueries++

	var out []models.Appointment
	for _, ap := range f.existing {
		if ap.ProfessionalID == professionalID &&
			ap.Window.Start.Before(end) && ap.Window.End.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	ap.ID = f.nextID
	f.existing = append(f.existing, *ap)
	f.created = ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment, fields []string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls++
	f.updated = ap
	f.updatedFields = fields
	return nil
}

func (f *fakeRepo) UpdateAppointmentRescheduled(_ context.Context, ap *models.Appointment, fields []string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rescheduleCalls++
	f.updated = ap
	f.updatedFields = fields
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, professionalID, appointmentID uint) error {
	for i, ap := range f.existing {
		if ap.ID == appointmentID && ap.ProfessionalID == professionalID {
			f.existing = append(f.existing[:i], f.existing[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Profissional que atende só às quartas, das 09:00 às 18:00.
func wednesdayProfessional() *models.Professional {
	hours := []models.BusinessHours{
		{Weekday: "qua", OpensAt: "09:00", ClosesAt: "18:00"},
	}
	for _, key := range []string{"dom", "seg", "ter", "qui", "sex", "sab"} {
		hours = append(hours, models.BusinessHours{Weekday: key, Closed: true})
	}

	return &models.Professional{
		ID:       1,
		Name:     "Estúdio Central",
		Timezone: "UTC",
		Services: []models.Service{
			{Name: "corte", DurationMin: 30, Price: 50},
			{Name: "barba", DurationMin: 20, Price: 30},
		},
		Hours: hours,
	}
}

// 2025-03-05 é uma quarta-feira.
func wednesdayAt(hour, min int) time.Time {
	return time.Date(2025, 3, 5, hour, min, 0, 0, time.UTC)
}

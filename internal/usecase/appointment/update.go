package appointment

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendaja/agenda-api/internal/domain/booking"
	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/metrics"
	"github.com/agendaja/agenda-api/internal/models"
	"github.com/agendaja/agenda-api/internal/scheduling"
	"github.com/agendaja/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput is the explicit allow-list of mutable fields.
// Nil means "leave untouched". Window end, price and the services
// snapshot are derived: they are recomputed when Services or Start is
// supplied, never set directly.
type UpdateAppointmentInput struct {
	ProfessionalID uint
	AppointmentID  uint

	Start      *time.Time
	ClientName *string
	Note       *string
	Services   *[]string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Agendamento existente
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.ProfessionalID, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Profissional
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	updated := *ap
	reschedule := in.Start != nil

	// --------------------------------------------------
	// 3. Janela recalculada quando horário e/ou serviços mudam
	// --------------------------------------------------
	if in.Services != nil || reschedule {
		services := []string(ap.Services)
		if in.Services != nil {
			services = *in.Services
		}

		start := ap.Window.Start
		if reschedule {
			start = in.Start.In(timezone.Location(prof.Timezone))
		}

		window, err := scheduling.ComputeWindow(prof.Services, services, start)
		if err != nil {
			return nil, err
		}

		updated.Window = models.TimeWindow{Start: window.Start, End: window.End}
		updated.Services = models.ServiceNames(services)
		updated.Price = window.Price
	}

	// --------------------------------------------------
	// 4. Revalidação apenas quando um novo horário foi enviado
	// --------------------------------------------------
	if reschedule {
		if err := scheduling.ValidateBusinessHours(prof.Hours, updated.Window.Start, updated.Window.End); err != nil {
			return nil, err
		}

		candidates, err := uc.repo.ListOverlapCandidates(ctx, in.ProfessionalID, updated.Window.Start, updated.Window.End)
		if err != nil {
			return nil, err
		}

		if conflict := scheduling.FindOverlap(candidates, updated.Window.Start, updated.Window.End, ap.ID); conflict != nil {
			metrics.IncTimeConflict()
			return nil, httperr.ErrBusiness("time_conflict")
		}
	}

	if in.ClientName != nil {
		updated.ClientName = *in.ClientName
	}
	if in.Note != nil {
		updated.Note = *in.Note
	}

	// --------------------------------------------------
	// 5. Apenas campos que realmente mudaram
	// --------------------------------------------------
	fields := changedFields(ap, &updated)
	if len(fields) == 0 {
		return nil, httperr.ErrBusiness("no_change")
	}

	if reschedule {
		err = uc.repo.UpdateAppointmentRescheduled(ctx, &updated, fields)
	} else {
		err = uc.repo.UpdateAppointment(ctx, &updated, fields)
	}
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.IncTimeConflict()
		}
		return nil, err
	}

	return &updated, nil
}

// changedFields compares every mutable column by value and returns the
// ones to persist.
func changedFields(current, updated *models.Appointment) []string {
	var fields []string

	if !current.Window.Start.Equal(updated.Window.Start) || !current.Window.End.Equal(updated.Window.End) {
		fields = append(fields, "start_time", "end_time")
	}
	if !slices.Equal(current.Services, updated.Services) {
		fields = append(fields, "services")
	}
	if current.Price != updated.Price {
		fields = append(fields, "price")
	}
	if current.ClientName != updated.ClientName {
		fields = append(fields, "client_name")
	}
	if current.Note != updated.Note {
		fields = append(fields, "note")
	}

	return fields
}

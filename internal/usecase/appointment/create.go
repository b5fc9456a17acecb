package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
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

type CreateAppointmentInput struct {
	ProfessionalID uint

	Start time.Time

	ClientName string
	ClientID   string
	Note       string

	Services []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.Start.IsZero() || in.ClientName == "" || len(in.Services) == 0 {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// 2. Profissional (catálogo + horário de funcionamento)
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	// O dia da semana e os limites do expediente são avaliados no fuso
	// do profissional.
	start := in.Start.In(timezone.Location(prof.Timezone))

	// --------------------------------------------------
	// 3. Janela do agendamento (duração + preço do catálogo)
	// --------------------------------------------------
	window, err := scheduling.ComputeWindow(prof.Services, in.Services, start)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Horário de funcionamento
	// --------------------------------------------------
	if err := scheduling.ValidateBusinessHours(prof.Hours, window.Start, window.End); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Conflito de horário
	// --------------------------------------------------
	candidates, err := uc.repo.ListOverlapCandidates(ctx, in.ProfessionalID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	if conflict := scheduling.FindOverlap(candidates, window.Start, window.End, 0); conflict != nil {
		metrics.IncTimeConflict()
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// 6. Criação (o repositório revalida o conflito sob lock)
	// --------------------------------------------------
	clientID := in.ClientID
	if clientID == "" {
		clientID = uuid.NewString()
	}

	ap := &models.Appointment{
		ProfessionalID: in.ProfessionalID,
		ClientID:       clientID,
		ClientName:     in.ClientName,
		Note:           in.Note,
		Window: models.TimeWindow{
			Start: window.Start,
			End:   window.End,
		},
		Services: models.ServiceNames(in.Services),
		Price:    window.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.IncTimeConflict()
		}
		return nil, err
	}

	metrics.IncAppointmentCreated()
	return ap, nil
}

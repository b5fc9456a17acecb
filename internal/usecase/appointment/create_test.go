package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
)

func TestCreateAppointment_Success(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 0),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, uint(1), ap.ProfessionalID)
	assert.Equal(t, "Ana", ap.ClientName)
	assert.True(t, ap.Window.Start.Equal(wednesdayAt(9, 0)))
	assert.True(t, ap.Window.End.Equal(wednesdayAt(9, 30)))
	assert.Equal(t, 50.0, ap.Price)
	assert.Equal(t, models.ServiceNames{"corte"}, ap.Services)

	// Sem client_id no payload, um identificador é gerado.
	assert.NotEmpty(t, ap.ClientID)
}

func TestCreateAppointment_KeepsProvidedClientID(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(10, 0),
		ClientName:     "Ana",
		ClientID:       "cliente-123",
		Services:       []string{"corte"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente-123", ap.ClientID)
}

func TestCreateAppointment_TimeConflict(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 0),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.NoError(t, err)

	// 09:15 cruza com o agendamento de 09:00-09:30.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 15),
		ClientName:     "Bruno",
		Services:       []string{"corte"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateAppointment_BackToBackIsFree(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 0),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.NoError(t, err)

	// Começar exatamente quando o anterior termina não conflita.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 30),
		ClientName:     "Bruno",
		Services:       []string{"corte"},
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	// 17:45 + 30min termina 18:15, depois do fechamento.
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(17, 45),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// 17:30 termina exatamente no fechamento e é aceito.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(17, 30),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_ClosedDay(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	// 2025-03-09 é um domingo.
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "closed_day"))
}

func TestCreateAppointment_ServiceNotFound(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 0),
		ClientName:     "Ana",
		Services:       []string{"massagem"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_ProfessionalNotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 99,
		Start:          wednesdayAt(9, 0),
		ClientName:     "Ana",
		Services:       []string{"corte"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

func TestCreateAppointment_MissingFields(t *testing.T) {
	repo := &fakeRepo{prof: wednesdayProfessional()}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: 1,
		Start:          wednesdayAt(9, 0),
		Services:       []string{"corte"},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

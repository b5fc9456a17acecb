package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/httpresp"
	"github.com/agendaja/agenda-api/internal/models"
	ucAppointment "github.com/agendaja/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// horario carries the requested start instant; the end is always
// derived from the selected services, so any extra elements are
// ignored.
type createAppointmentRequest struct {
	Horario    []time.Time `json:"horario" binding:"required,min=1"`
	Nome       string      `json:"nome" binding:"required"`
	Servicos   []string    `json:"servicos" binding:"required,min=1"`
	Observacao string      `json:"observacao"`
	ClientID   string      `json:"client_id"`
}

type updateAppointmentRequest struct {
	Horario    []time.Time `json:"horario"`
	Nome       *string     `json:"nome"`
	Servicos   *[]string   `json:"servicos"`
	Observacao *string     `json:"observacao"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProfessionalID: professionalID,
		Start:          req.Horario[0],
		ClientName:     req.Nome,
		ClientID:       req.ClientID,
		Note:           req.Observacao,
		Services:       req.Servicos,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	appointmentID, ok := parseIDParam(c, "appointmentId")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	appointmentID, ok := parseIDParam(c, "appointmentId")
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var start *time.Time
	if len(req.Horario) > 0 {
		start = &req.Horario[0]
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ProfessionalID: professionalID,
		AppointmentID:  appointmentID,
		Start:          start,
		ClientName:     req.Nome,
		Note:           req.Observacao,
		Services:       req.Servicos,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	appointmentID, ok := parseIDParam(c, "appointmentId")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Agendamento excluído com sucesso."})
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/httpresp"
	"github.com/agendaja/agenda-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type createClientRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
}

type updateClientRequest struct {
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.db.First(&models.Professional{}, professionalID).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	client := models.Client{
		ProfessionalID: professionalID,
		Name:           req.Nome,
		CPF:            req.CPF,
		Email:          req.Email,
		Phone:          req.Telefone,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// LIST (optional ?query= busca por nome/telefone/email)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("professional_id = ?", professionalID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND professional_id = ?", clientID, professionalID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE (allow-list de campos)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND professional_id = ?", clientID, professionalID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	cols := map[string]any{}
	if req.Nome != nil {
		cols["name"] = *req.Nome
	}
	if req.CPF != nil {
		cols["cpf"] = *req.CPF
	}
	if req.Email != nil {
		cols["email"] = *req.Email
	}
	if req.Telefone != nil {
		cols["phone"] = *req.Telefone
	}

	if len(cols) == 0 {
		httperr.BadRequest(c, "invalid_request", "Nenhum campo válido foi enviado para atualização.")
		return
	}

	if err := h.db.Model(&client).Updates(cols).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND professional_id = ?", clientID, professionalID).
		Delete(&models.Client{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cliente excluído com sucesso."})
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/httpresp"
	"github.com/agendaja/agenda-api/internal/models"
	"github.com/agendaja/agenda-api/internal/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type serviceInput struct {
	Nome           string  `json:"nome" binding:"required"`
	DuracaoMinutos int     `json:"duracao_minutos" binding:"required,gt=0"`
	Preco          float64 `json:"preco" binding:"gte=0"`
}

type createProfessionalRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CNPJ     string `json:"cnpj"`
	CPF      string `json:"cpf"`
	Email    string `json:"email" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
	Endereco string `json:"endereco" binding:"required"`
	Timezone string `json:"timezone"`

	HorarioFuncionamento map[string]*[2]string `json:"horario_funcionamento" binding:"required"`
	Servicos             []serviceInput        `json:"servicos" binding:"required,min=1,dive"`
}

type updateProfessionalRequest struct {
	Nome     *string `json:"nome"`
	CNPJ     *string `json:"cnpj"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	Timezone *string `json:"timezone"`

	HorarioFuncionamento map[string]*[2]string `json:"horario_funcionamento"`
	Servicos             *[]serviceInput       `json:"servicos"`
}

// professionalResponse renders the stored weekday rows back as the
// horario_funcionamento map the API speaks.
type professionalResponse struct {
	*models.Professional
	HorarioFuncionamento map[string]*[2]string `json:"horario_funcionamento"`
}

func newProfessionalResponse(p *models.Professional) professionalResponse {
	return professionalResponse{
		Professional:         p,
		HorarioFuncionamento: scheduling.WeekMap(p.Hours),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req createProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.CNPJ == "" && req.CPF == "" {
		httperr.BadRequest(c, "missing_cnpj_cpf", businessMessages["missing_cnpj_cpf"])
		return
	}

	hours, err := scheduling.BuildWeek(req.HorarioFuncionamento)
	if err != nil {
		respondError(c, err)
		return
	}

	services, err := buildCatalog(req.Servicos)
	if err != nil {
		respondError(c, err)
		return
	}

	prof := models.Professional{
		Name:     req.Nome,
		CNPJ:     req.CNPJ,
		CPF:      req.CPF,
		Email:    req.Email,
		Phone:    req.Telefone,
		Address:  req.Endereco,
		Timezone: req.Timezone,
		Services: services,
		Hours:    hours,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	httpresp.Created(c, newProfessionalResponse(&prof))
}

// ======================================================
// GET
// ======================================================

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prof, err := h.load(id)
	if err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, newProfessionalResponse(prof))
}

// ======================================================
// UPDATE (partial, only changed fields persisted)
// ======================================================

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cur, err := h.load(id)
	if err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	// Required fields must stay satisfied after the merge.
	for _, p := range []*string{req.Nome, req.Email, req.Telefone, req.Endereco} {
		if p != nil && *p == "" {
			httperr.BadRequest(c, "missing_fields", businessMessages["missing_fields"])
			return
		}
	}

	newCNPJ, newCPF := cur.CNPJ, cur.CPF
	if req.CNPJ != nil {
		newCNPJ = *req.CNPJ
	}
	if req.CPF != nil {
		newCPF = *req.CPF
	}
	if newCNPJ == "" && newCPF == "" {
		httperr.BadRequest(c, "missing_cnpj_cpf", businessMessages["missing_cnpj_cpf"])
		return
	}

	cols := map[string]any{}
	setIfChanged := func(col string, p *string, cur string) {
		if p != nil && *p != cur {
			cols[col] = *p
		}
	}
	setIfChanged("name", req.Nome, cur.Name)
	setIfChanged("cnpj", req.CNPJ, cur.CNPJ)
	setIfChanged("cpf", req.CPF, cur.CPF)
	setIfChanged("email", req.Email, cur.Email)
	setIfChanged("phone", req.Telefone, cur.Phone)
	setIfChanged("address", req.Endereco, cur.Address)
	setIfChanged("timezone", req.Timezone, cur.Timezone)

	var newServices []models.Service
	servicesChanged := false
	if req.Servicos != nil {
		if len(*req.Servicos) == 0 {
			httperr.BadRequest(c, "missing_fields", businessMessages["missing_fields"])
			return
		}
		newServices, err = buildCatalog(*req.Servicos)
		if err != nil {
			respondError(c, err)
			return
		}
		servicesChanged = !sameCatalog(cur.Services, newServices)
	}

	var newHours []models.BusinessHours
	hoursChanged := false
	if req.HorarioFuncionamento != nil {
		// A supplied schedule replaces the whole week; omitted days close.
		newHours, err = scheduling.BuildWeek(req.HorarioFuncionamento)
		if err != nil {
			respondError(c, err)
			return
		}
		hoursChanged = !sameWeek(scheduling.WeekMap(cur.Hours), scheduling.WeekMap(newHours))
	}

	if len(cols) == 0 && !servicesChanged && !hoursChanged {
		httperr.BadRequest(c, "no_change", businessMessages["no_change"])
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			if err := tx.Model(&models.Professional{}).
				Where("id = ?", id).
				Updates(cols).Error; err != nil {
				return err
			}
		}

		if servicesChanged {
			if err := tx.Where("professional_id = ?", id).Delete(&models.Service{}).Error; err != nil {
				return err
			}
			for i := range newServices {
				newServices[i].ProfessionalID = id
			}
			if err := tx.Create(&newServices).Error; err != nil {
				return err
			}
		}

		if hoursChanged {
			if err := tx.Where("professional_id = ?", id).Delete(&models.BusinessHours{}).Error; err != nil {
				return err
			}
			for i := range newHours {
				newHours[i].ProfessionalID = id
			}
			if err := tx.Create(&newHours).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	updated, err := h.load(id)
	if err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	httpresp.OK(c, newProfessionalResponse(updated))
}

// ======================================================
// HELPERS
// ======================================================

func (h *ProfessionalHandler) load(id uint) (*models.Professional, error) {
	var prof models.Professional
	err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Hours").
		First(&prof, id).Error
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

func buildCatalog(inputs []serviceInput) ([]models.Service, error) {
	seen := make(map[string]struct{}, len(inputs))
	services := make([]models.Service, 0, len(inputs))

	for i, in := range inputs {
		if _, dup := seen[in.Nome]; dup {
			return nil, httperr.ErrBusinessDetail("duplicate_service", in.Nome)
		}
		seen[in.Nome] = struct{}{}

		services = append(services, models.Service{
			Name:        in.Nome,
			DurationMin: in.DuracaoMinutos,
			Price:       in.Preco,
			Position:    i,
		})
	}

	return services, nil
}

func sameCatalog(a, b []models.Service) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name ||
			a[i].DurationMin != b[i].DurationMin ||
			a[i].Price != b[i].Price {
			return false
		}
	}
	return true
}

func sameWeek(a, b map[string]*[2]string) bool {
	for key, av := range a {
		bv := b[key]
		if (av == nil) != (bv == nil) {
			return false
		}
		if av != nil && *av != *bv {
			return false
		}
	}
	return true
}

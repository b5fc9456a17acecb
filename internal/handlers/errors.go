package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agendaja/agenda-api/internal/httperr"
)

var businessMessages = map[string]string{
	"missing_fields":         "Campos obrigatórios ausentes.",
	"missing_services":       "A lista de serviços não pode ser vazia.",
	"service_not_found":      "Serviço não encontrado no catálogo.",
	"closed_day":             "O profissional não atende neste dia.",
	"outside_working_hours":  "Fora do horário de atendimento.",
	"time_conflict":          "Conflito de horário.",
	"no_change":              "Nenhum campo foi alterado.",
	"invalid_weekday":        "Dia da semana inválido.",
	"invalid_business_hours": "Horário de funcionamento inválido.",
	"missing_cnpj_cpf":       "É necessário informar pelo menos o campo 'cnpj' ou 'cpf'.",
	"duplicate_service":      "Serviço duplicado no catálogo.",
}

// respondError maps a BusinessError code to its HTTP status; anything
// else is a persistence/collaborator failure and surfaces as 500 with
// the underlying message.
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "professional_not_found":
			httperr.NotFound(c, be.Code, "Profissional não encontrado.")
		case "appointment_not_found":
			httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
		case "client_not_found":
			httperr.NotFound(c, be.Code, "Cliente não encontrado.")
		default:
			msg := businessMessages[be.Code]
			if msg == "" {
				msg = be.Code
			}
			if be.Detail != "" {
				msg += " (" + be.Detail + ")"
			}
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	httperr.Internal(c, "internal_error", err.Error())
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

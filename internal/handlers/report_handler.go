package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/agendaja/agenda-api/internal/cache"
	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/httpresp"
	"github.com/agendaja/agenda-api/internal/metrics"
	"github.com/agendaja/agenda-api/internal/timezone"
	ucReport "github.com/agendaja/agenda-api/internal/usecase/report"
)

type ReportHandler struct {
	generator *ucReport.Generator
	cache     *cache.Cache
	logger    zerolog.Logger
}

func NewReportHandler(
	generator *ucReport.Generator,
	reportCache *cache.Cache,
	logger zerolog.Logger,
) *ReportHandler {
	return &ReportHandler{
		generator: generator,
		cache:     reportCache,
		logger:    logger,
	}
}

// ======================================================
// GET /relatorios?startDate&endDate
// ======================================================

func (h *ReportHandler) Get(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_period", "Os parâmetros startDate e endDate são obrigatórios.")
		return
	}

	start, err := parsePeriodBound(startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_period", "Data inválida: "+startStr)
		return
	}
	end, err := parsePeriodBound(endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_period", "Data inválida: "+endStr)
		return
	}

	ctx := c.Request.Context()
	key := fmt.Sprintf("relatorio:%d:%s:%s", professionalID, startStr, endStr)

	if body, hit := h.cache.Get(ctx, key); hit {
		metrics.IncReportServed("cache")
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	rep, err := h.generator.Execute(ctx, professionalID, start, end, ucReport.Period{
		Start: startStr,
		End:   endStr,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if rep.TotalAppointments == 0 {
		httpresp.OK(c, gin.H{
			"mensagem": "Nenhum dado encontrado para o período.",
			"periodo":  rep.Period,
		})
		return
	}

	h.cache.Set(ctx, key, rep)
	metrics.IncReportServed("store")

	h.logger.Debug().
		Uint("professional_id", professionalID).
		Int("appointments", rep.TotalAppointments).
		Msg("report generated")

	httpresp.OK(c, rep)
}

// parsePeriodBound accepts either a full RFC3339 instant or a bare
// date, resolved in the default timezone.
func parsePeriodBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, timezone.Location(""))
}

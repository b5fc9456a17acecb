package report

import (
	"context"
	"time"

	domain "github.com/agendaja/agenda-api/internal/domain/booking"
)

// Wire shapes mirror the relatorios contract consumed by the dashboard.

type Period struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

type TopService struct {
	Name  *string `json:"nomeServico"`
	Count int     `json:"frequencia"`
}

type ClientSummary struct {
	Name     string   `json:"nome"`
	Total    float64  `json:"valor"`
	Services []string `json:"servicos"`
	Visits   int      `json:"visitas"`
}

type Report struct {
	Period            Period                    `json:"periodo"`
	TopService        TopService                `json:"servicoMaisUtilizado"`
	TotalRevenue      float64                   `json:"faturamentoTotal"`
	ClientsVisited    map[string]*ClientSummary `json:"clientesVisitados"`
	TotalAppointments int                       `json:"totalAgendamentos"`
}

// ======================================================
// USE CASE
// ======================================================

type Generator struct {
	repo domain.Repository
}

func NewGenerator(repo domain.Repository) *Generator {
	return &Generator{repo: repo}
}

// Execute reduces the appointments fully contained in [start, end]:
// total revenue, most used service, per-client visit summary.
func (g *Generator) Execute(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
	period Period,
) (*Report, error) {

	aps, err := g.repo.ListAppointmentsForPeriod(ctx, professionalID, start, end)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Period:            period,
		ClientsVisited:    map[string]*ClientSummary{},
		TotalAppointments: len(aps),
	}

	serviceFreq := map[string]int{}

	for i := range aps {
		ap := &aps[i]
		rep.TotalRevenue += ap.Price

		if summary, ok := rep.ClientsVisited[ap.ClientID]; ok {
			summary.Total += ap.Price
			summary.Services = mergeServices(summary.Services, ap.Services)
			summary.Visits++
		} else {
			rep.ClientsVisited[ap.ClientID] = &ClientSummary{
				Name:     ap.ClientName,
				Total:    ap.Price,
				Services: append([]string(nil), ap.Services...),
				Visits:   1,
			}
		}

		for _, svc := range ap.Services {
			serviceFreq[svc]++
		}
	}

	for name, freq := range serviceFreq {
		if freq > rep.TopService.Count {
			n := name
			rep.TopService = TopService{Name: &n, Count: freq}
		}
	}

	return rep, nil
}

// mergeServices appends the names not already present, preserving order.
func mergeServices(have []string, add []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, s := range have {
		seen[s] = struct{}{}
	}
	for _, s := range add {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			have = append(have, s)
		}
	}
	return have
}

package scheduling

import (
	"time"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
)

// Window is the computed booking interval plus the price snapshot.
type Window struct {
	Start time.Time
	End   time.Time
	Price float64
}

// ComputeWindow derives an appointment's window from the professional's
// catalog: the end time is the start plus the sum of the requested
// services' estimated durations, the price is the sum of their prices.
// Duplicated names are counted each time they appear. Lookup is by exact
// name match.
func ComputeWindow(catalog []models.Service, names []string, start time.Time) (Window, error) {
	if len(names) == 0 {
		return Window{}, httperr.ErrBusiness("missing_services")
	}

	var totalMin int
	var price float64

	for _, name := range names {
		svc, ok := lookupService(catalog, name)
		if !ok {
			return Window{}, httperr.ErrBusinessDetail("service_not_found", name)
		}
		totalMin += svc.DurationMin
		price += svc.Price
	}

	return Window{
		Start: start,
		End:   start.Add(time.Duration(totalMin) * time.Minute),
		Price: price,
	}, nil
}

func lookupService(catalog []models.Service, name string) (*models.Service, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], true
		}
	}
	return nil, false
}

package scheduling

import (
	"time"

	"github.com/agendaja/agenda-api/internal/models"
)

// FindOverlap returns the first appointment whose [start, end) window
// intersects the candidate window, or nil. Intervals are half-open, so
// touching endpoints (one booking ending exactly when the next starts)
// never conflict. excludeID skips an appointment being updated so it is
// not reported as conflicting with itself; pass 0 on create.
func FindOverlap(existing []models.Appointment, start, end time.Time, excludeID uint) *models.Appointment {
	for i := range existing {
		ap := &existing[i]
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.Window.Start.Before(end) && ap.Window.End.After(start) {
			return ap
		}
	}
	return nil
}

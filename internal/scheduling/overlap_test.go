package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaja/agenda-api/internal/models"
)

func appointmentAt(id uint, start, end time.Time) models.Appointment {
	return models.Appointment{
		ID:     id,
		Window: models.TimeWindow{Start: start, End: end},
	}
}

func TestFindOverlap(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		appointmentAt(1, base, base.Add(30*time.Minute)), // 09:00-09:30
	}

	tests := []struct {
		name       string
		start, end time.Time
		wantID     uint
	}{
		{"identical window", base, base.Add(30 * time.Minute), 1},
		{"partial overlap", base.Add(15 * time.Minute), base.Add(45 * time.Minute), 1},
		{"contains existing", base.Add(-15 * time.Minute), base.Add(45 * time.Minute), 1},
		{"contained by existing", base.Add(10 * time.Minute), base.Add(20 * time.Minute), 1},
		{"touching end is free", base.Add(30 * time.Minute), base.Add(60 * time.Minute), 0},
		{"touching start is free", base.Add(-30 * time.Minute), base, 0},
		{"disjoint", base.Add(2 * time.Hour), base.Add(3 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOverlap(existing, tt.start, tt.end, 0)
			if tt.wantID == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFindOverlap_ExcludesSelf(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		appointmentAt(7, base, base.Add(30*time.Minute)),
	}

	// Reagendar o próprio horário não conflita consigo mesmo.
	assert.Nil(t, FindOverlap(existing, base, base.Add(30*time.Minute), 7))

	// Mas conflita com qualquer outro.
	existing = append(existing, appointmentAt(8, base, base.Add(30*time.Minute)))
	got := FindOverlap(existing, base, base.Add(30*time.Minute), 7)
	require.NotNil(t, got)
	assert.Equal(t, uint(8), got.ID)
}

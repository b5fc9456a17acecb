package scheduling

import (
	"time"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
)

// BuildWeek normalizes a client-sent horario_funcionamento map into the
// seven canonical weekday rows. A nil value or an absent key means the
// day is closed. Values must be ["HH:MM", "HH:MM"] pairs with open
// strictly before close.
func BuildWeek(raw map[string]*[2]string) ([]models.BusinessHours, error) {
	byKey := make(map[string]*[2]string, len(raw))
	for k, v := range raw {
		key, ok := NormalizeDayKey(k)
		if !ok {
			return nil, httperr.ErrBusinessDetail("invalid_weekday", k)
		}
		byKey[key] = v
	}

	rows := make([]models.BusinessHours, 0, 7)
	for _, key := range weekdayKeys {
		pair := byKey[key]
		if pair == nil {
			rows = append(rows, models.BusinessHours{Weekday: key, Closed: true})
			continue
		}

		open, err := time.Parse("15:04", pair[0])
		if err != nil {
			return nil, httperr.ErrBusinessDetail("invalid_business_hours", pair[0])
		}
		closeAt, err := time.Parse("15:04", pair[1])
		if err != nil {
			return nil, httperr.ErrBusinessDetail("invalid_business_hours", pair[1])
		}
		if !open.Before(closeAt) {
			return nil, httperr.ErrBusinessDetail("invalid_business_hours", pair[0]+"-"+pair[1])
		}

		rows = append(rows, models.BusinessHours{
			Weekday:  key,
			OpensAt:  pair[0],
			ClosesAt: pair[1],
		})
	}

	return rows, nil
}

// WeekMap renders stored weekday rows back into the wire shape, with
// null for closed days. All seven keys are always present.
func WeekMap(rows []models.BusinessHours) map[string]*[2]string {
	out := make(map[string]*[2]string, 7)
	for _, key := range weekdayKeys {
		out[key] = nil
	}
	for _, row := range rows {
		if row.Closed || row.OpensAt == "" || row.ClosesAt == "" {
			continue
		}
		out[row.Weekday] = &[2]string{row.OpensAt, row.ClosesAt}
	}
	return out
}

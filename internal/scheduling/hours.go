package scheduling

import (
	"time"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
)

// ValidateBusinessHours checks that [start, end] fits inside the
// professional's configured hours for start's weekday. Boundaries are
// inclusive: starting exactly at opening or ending exactly at closing is
// valid.
//
// The weekday and the open/close instants are derived from start's
// calendar date only. A window whose end spills past midnight is still
// validated against the start day's hours; whether that should instead
// consult the next day is an open product question.
func ValidateBusinessHours(hours []models.BusinessHours, start, end time.Time) error {
	day, ok := dayFor(hours, WeekdayKey(start))
	if !ok || day.Closed || day.OpensAt == "" || day.ClosesAt == "" {
		return httperr.ErrBusiness("closed_day")
	}

	dayOpen, err := atClockTime(start, day.OpensAt)
	if err != nil {
		return httperr.ErrBusinessDetail("invalid_business_hours", day.OpensAt)
	}
	dayClose, err := atClockTime(start, day.ClosesAt)
	if err != nil {
		return httperr.ErrBusinessDetail("invalid_business_hours", day.ClosesAt)
	}

	if start.Before(dayOpen) || end.After(dayClose) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	return nil
}

// DayBounds returns the open/close instants for start's weekday, used to
// scope report and availability queries. ok is false on a closed day.
func DayBounds(hours []models.BusinessHours, start time.Time) (open, close time.Time, ok bool) {
	day, found := dayFor(hours, WeekdayKey(start))
	if !found || day.Closed || day.OpensAt == "" || day.ClosesAt == "" {
		return time.Time{}, time.Time{}, false
	}

	open, errOpen := atClockTime(start, day.OpensAt)
	close, errClose := atClockTime(start, day.ClosesAt)
	if errOpen != nil || errClose != nil {
		return time.Time{}, time.Time{}, false
	}
	return open, close, true
}

func dayFor(hours []models.BusinessHours, key string) (*models.BusinessHours, bool) {
	for i := range hours {
		if hours[i].Weekday == key {
			return &hours[i], true
		}
	}
	return nil, false
}

// atClockTime places an "HH:MM" local time on ref's calendar date, in
// ref's location.
func atClockTime(ref time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	), nil
}

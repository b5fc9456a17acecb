package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolves a professional's configured timezone, falling back
// to the default when empty or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

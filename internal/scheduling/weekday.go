package scheduling

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical weekday keys, indexed by time.Weekday (Sunday = 0).
var weekdayKeys = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}

var canonicalDays = map[string]struct{}{
	"dom": {}, "seg": {}, "ter": {}, "qua": {}, "qui": {}, "sex": {}, "sab": {},
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// WeekdayKey returns the canonical key for t's calendar date in t's
// location.
func WeekdayKey(t time.Time) string {
	return weekdayKeys[int(t.Weekday())]
}

// NormalizeDayKey maps a client-provided weekday key to its canonical
// form, ignoring case and accents ("Sáb", "SAB" and "sábado" all resolve
// to "sab"). The second return is false for anything unrecognizable.
func NormalizeDayKey(s string) (string, bool) {
	folded, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	if err != nil || len(folded) < 3 {
		return "", false
	}

	key := folded[:3]
	if _, ok := canonicalDays[key]; ok {
		return key, true
	}
	return "", false
}

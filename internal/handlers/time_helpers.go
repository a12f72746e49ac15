package handlers

import (
	"time"

	"github.com/barbertime/agenda-api/internal/timezone"
)

// --------------------------------------------------
// Datas sempre interpretadas no timezone da agenda
// --------------------------------------------------

func locationFor(tz string) *time.Location {
	return timezone.Location(tz)
}

func parseDateIn(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

func parseDateTimeIn(
	tz string,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(tz),
	)
}

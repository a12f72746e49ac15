package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
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

// Clock é a implementação real injetada nos use cases
type Clock struct {
	TZ string
}

func (c Clock) Now() time.Time {
	return NowIn(c.TZ)
}

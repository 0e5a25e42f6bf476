package handlers

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Clock источник текущего времени
type Clock func() time.Time

// ParseDate разбирает дату YYYY-MM-DD в часовом поясе компании.
// Пустое значение означает сегодняшнюю дату в этом часовом поясе.
func ParseDate(value string, loc *time.Location, now Clock) (time.Time, error) {
	if value == "" {
		y, m, d := now().In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation(domain.DateFormat, value, loc)
}

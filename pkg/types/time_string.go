package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM или HH:MM:SS
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

	// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDay = errors.New("types: time is out of day range")
)

// EndOfDay исключающая верхняя граница суток (24:00).
// Может быть получена только через AddMinutes, из строки не парсится.
var EndOfDay = TimeString{seconds: secondsPerDay}

// TimeString время суток без даты и часового пояса (локальное гражданское время компании).
// Хранится как количество секунд от полуночи. Нулевое значение - 00:00.
type TimeString struct {
	seconds int
}

// NewTimeString создает TimeString из time.Time, отбрасывая дату
func NewTimeString(t time.Time) TimeString {
	return TimeString{seconds: t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()}
}

// NewTimeStringFromString парсит время в формате HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, part := range parts {
		// Postgres может вернуть дробные секунды: 09:00:00.000000
		if i == 2 {
			if dot := strings.IndexByte(part, '.'); dot >= 0 {
				part = part[:dot]
			}
		}
		if len(part) != 2 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > limits[i] {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		values[i] = v
	}

	return TimeString{seconds: values[0]*secondsPerHour + values[1]*secondsPerMinute + values[2]}, nil
}

// MustTimeString парсит время и паникует при ошибке. Только для констант и тестов.
func MustTimeString(s string) TimeString {
	t, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String возвращает время в формате HH:MM (секунды отбрасываются)
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.seconds/secondsPerHour, (t.seconds%secondsPerHour)/secondsPerMinute)
}

// Hour возвращает час (0-23, 24 только для EndOfDay)
func (t TimeString) Hour() int {
	return t.seconds / secondsPerHour
}

// Minutes возвращает количество полных минут от полуночи
func (t TimeString) Minutes() int {
	return t.seconds / secondsPerMinute
}

// AddMinutes прибавляет n минут. Переход через полночь не допускается:
// результат должен лежать в [00:00, 24:00], иначе ErrOutOfDay.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	result := t.seconds + n*secondsPerMinute
	if result < 0 || result > secondsPerDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d min", ErrOutOfDay, t, n)
	}
	return TimeString{seconds: result}, nil
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) int {
	return (other.seconds - t.seconds) / secondsPerMinute
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool {
	return t.seconds < other.seconds
}

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool {
	return t.seconds > other.seconds
}

// Equal совпадает ли время
func (t TimeString) Equal(other TimeString) bool {
	return t.seconds == other.seconds
}

// Overlaps проверяет пересечение полуоткрытых интервалов [startA, endA) и [startB, endB).
// Соприкасающиеся интервалы (endA == startB) НЕ пересекаются.
func Overlaps(startA, endA, startB, endB TimeString) bool {
	return startA.IsBefore(endB) && endA.IsAfter(startB)
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", t.seconds/secondsPerHour, (t.seconds%secondsPerHour)/secondsPerMinute, t.seconds%secondsPerMinute), nil
}

// MarshalText сериализует время как HH:MM
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText парсит HH:MM или HH:MM:SS
func (t *TimeString) UnmarshalText(data []byte) error {
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

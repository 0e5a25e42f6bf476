package domain

import (
	"fmt"
	"time"
)

// Weekday день недели по ISO-8601: понедельник = 1, воскресенье = 7
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayOf возвращает день недели для даты.
// Не зависит от локали, в отличие от форматирования даты в строку.
func WeekdayOf(date time.Time) Weekday {
	wd := date.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// Valid входит ли значение в диапазон Monday..Sunday
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

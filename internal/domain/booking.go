package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending                 BookingStatus = "pending"
	StatusConfirmed               BookingStatus = "confirmed"
	StatusCompleted               BookingStatus = "completed"
	StatusCancelled               BookingStatus = "cancelled"
	StatusCancelledByClient       BookingStatus = "cancelled_by_client"
	StatusCancelledByProfessional BookingStatus = "cancelled_by_professional"
)

// Booking бронирование вместе с длительностью его собственной услуги
type Booking struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64
	BookingDate    time.Time
	StartTime      types.TimeString
	Status         BookingStatus

	// Длительность услуги, на которую сделана запись (а не той, что планируется сейчас)
	ServiceDuration ServiceDuration
}

// IsCancelled true, если бронирование отменено и не занимает время
func (b *Booking) IsCancelled() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// BookingOccupancy интервал занятости специалиста существующей записью
type BookingOccupancy struct {
	StartTime       types.TimeString
	OccupiedMinutes int
}

// End конец занятости. Запись, заканчивающаяся после полуночи, занимает день до конца.
func (o BookingOccupancy) End() types.TimeString {
	end, err := o.StartTime.AddMinutes(o.OccupiedMinutes)
	if err != nil {
		return types.EndOfDay
	}
	return end
}

// Exception исключение в расписании специалиста (отпуск, заблокированное время)
type Exception struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Reason         *string
}

// ExceptionOccupancy интервал занятости специалиста исключением
type ExceptionOccupancy struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MiddayHour граница между утренними и дневными слотами
const MiddayHour = 12

// MsgNotAvailableForDate сообщение для пустого результата, когда у специалиста нет рабочих часов на дату
const MsgNotAvailableForDate = "professional is not available for this date"

// InactiveStatuses статусы бронирований, которые не занимают время специалиста
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCancelledByClient,
	StatusCancelledByProfessional,
}

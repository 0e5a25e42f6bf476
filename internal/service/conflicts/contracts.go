package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BookingRepository источник действующих бронирований специалиста
type BookingRepository interface {
	GetActiveByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error)
}

// ExceptionRepository источник исключений в расписании специалиста
type ExceptionRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Exception, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

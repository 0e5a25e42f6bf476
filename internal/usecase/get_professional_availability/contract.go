package get_professional_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	// GetOfferedService получает связь специалист-услуга с переопределениями цены и длительности
	GetOfferedService(ctx context.Context, professionalID, serviceID int64) (*domain.OfferedService, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// WorkingHoursResolver определяет рабочие часы специалиста на день недели
type WorkingHoursResolver interface {
	Resolve(ctx context.Context, professional *domain.Professional, weekday domain.Weekday) (*domain.WorkingHours, error)
}

// ConflictCollector собирает занятость специалиста на дату
type ConflictCollector interface {
	FetchBookingOccupancies(ctx context.Context, professionalID int64, date time.Time) ([]domain.BookingOccupancy, error)
	FetchExceptionOccupancies(ctx context.Context, professionalID int64, date time.Time) ([]domain.ExceptionOccupancy, error)
}

// MetricsRecorder учет сгенерированных слотов
type MetricsRecorder interface {
	ObserveSlot(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

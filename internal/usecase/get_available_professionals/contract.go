package get_available_professionals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	// ListByService получает всех специалистов, оказывающих услугу, вместе со связью
	ListByService(ctx context.Context, serviceID int64) ([]*domain.ProfessionalOffering, error)
}

// WorkingHoursResolver определяет рабочие часы специалиста на день недели
type WorkingHoursResolver interface {
	Resolve(ctx context.Context, professional *domain.Professional, weekday domain.Weekday) (*domain.WorkingHours, error)
}

// ExceptionChecker проверяет наличие исключений у специалиста на дату
type ExceptionChecker interface {
	HasExceptions(ctx context.Context, professionalID int64, date time.Time) (bool, error)
}

// MetricsRecorder учет результатов дневной проверки
type MetricsRecorder interface {
	ObserveProfessional(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

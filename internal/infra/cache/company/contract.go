package company

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository источник данных о компании, который кэшируется
type Repository interface {
	Get(ctx context.Context) (*domain.Company, error)
	GetSchedule(ctx context.Context, companyID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

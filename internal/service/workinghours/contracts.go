package workinghours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CompanyRepository источник единственной компании тенанта
type CompanyRepository interface {
	// Get возвращает компанию тенанта или company.ErrCompanyNotFound
	Get(ctx context.Context) (*domain.Company, error)
	// GetSchedule возвращает строку расписания компании на день недели (nil, если строки нет)
	GetSchedule(ctx context.Context, companyID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error)
}

// ProfessionalScheduleRepository источник собственного расписания специалиста
type ProfessionalScheduleRepository interface {
	// GetSchedule возвращает строку расписания специалиста на день недели (nil, если строки нет)
	GetSchedule(ctx context.Context, professionalID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

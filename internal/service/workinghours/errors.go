package workinghours

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrCompanyNotConfigured специалист работает по расписанию компании, но компании нет
	ErrCompanyNotConfigured = fmt.Errorf("workinghours: %w: company record is missing", domain.ErrConfiguration)

	// ErrMalformedSchedule строка расписания нарушает инварианты рабочих часов
	ErrMalformedSchedule = fmt.Errorf("workinghours: %w: malformed schedule", domain.ErrConfiguration)

	// ErrInvalidWeekday день недели вне диапазона Monday..Sunday
	ErrInvalidWeekday = fmt.Errorf("workinghours: %w: invalid weekday", domain.ErrInvalidInput)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("workinghours: internal error")
)

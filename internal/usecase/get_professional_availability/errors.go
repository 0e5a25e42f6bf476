package get_professional_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = fmt.Errorf("professional %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("service %w", domain.ErrNotFound)

	// ErrServiceNotOffered возвращается, когда специалист не оказывает услугу
	ErrServiceNotOffered = fmt.Errorf("usecase: %w", domain.ErrServiceNotOffered)

	// ErrInvalidServiceDuration возвращается, когда итоговая длительность услуги не положительна
	ErrInvalidServiceDuration = fmt.Errorf("usecase: %w", domain.ErrInvalidDuration)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("usecase: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

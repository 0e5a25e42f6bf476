package domain

import "errors"

// Базовые виды ошибок. Ошибки слоев оборачивают их, чтобы верхний уровень мог
// различать случаи через errors.Is, не завися от конкретного пакета.
var (
	// ErrNotFound специалист, услуга или компания не найдены
	ErrNotFound = errors.New("not found")

	// ErrServiceNotOffered специалист не оказывает запрошенную услугу
	ErrServiceNotOffered = errors.New("service is not offered by professional")

	// ErrConfiguration некорректная настройка тенанта (нет компании, битое расписание)
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidDuration суммарная длительность услуги не положительна
	ErrInvalidDuration = errors.New("invalid service duration")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
)

package domain

import "fmt"

// Service услуга с длительностью и ценой по умолчанию
type Service struct {
	ID                 int64
	Name               string
	DurationMinutes    int
	PreparationMinutes int
	PostServiceMinutes int
	Price              float64
}

// ServiceDuration длительность занятости специалиста одной записью
type ServiceDuration struct {
	ServiceMinutes     int
	PreparationMinutes int
	PostServiceMinutes int
}

// TotalMinutes шаг сетки слотов и длина занятости каждого слота
func (d ServiceDuration) TotalMinutes() int {
	return d.ServiceMinutes + d.PreparationMinutes + d.PostServiceMinutes
}

// Validate все составляющие неотрицательны, сумма положительна
func (d ServiceDuration) Validate() error {
	if d.ServiceMinutes < 0 || d.PreparationMinutes < 0 || d.PostServiceMinutes < 0 {
		return fmt.Errorf("%w: negative component (service=%d, preparation=%d, post=%d)",
			ErrInvalidDuration, d.ServiceMinutes, d.PreparationMinutes, d.PostServiceMinutes)
	}
	if d.TotalMinutes() <= 0 {
		return fmt.Errorf("%w: total must be positive", ErrInvalidDuration)
	}
	return nil
}

// Duration длительность услуги по умолчанию (без переопределений специалиста)
func (s *Service) Duration() ServiceDuration {
	return ServiceDuration{
		ServiceMinutes:     s.DurationMinutes,
		PreparationMinutes: s.PreparationMinutes,
		PostServiceMinutes: s.PostServiceMinutes,
	}
}

// OfferedService связь специалист-услуга с необязательными переопределениями
type OfferedService struct {
	ProfessionalID   int64
	ServiceID        int64
	PriceOverride    *float64
	DurationOverride *int
}

// Offering услуга в исполнении конкретного специалиста с итоговыми ценой и длительностью
type Offering struct {
	Service  *Service
	Price    float64
	Duration ServiceDuration
}

// ResolveOffering применяет переопределения специалиста к услуге.
// Правило приоритета: значение специалиста, если оно задано, иначе значение услуги.
// Подготовка и завершение всегда берутся из услуги.
func ResolveOffering(service *Service, offered *OfferedService) Offering {
	offering := Offering{
		Service:  service,
		Price:    service.Price,
		Duration: service.Duration(),
	}

	if offered == nil {
		return offering
	}

	if offered.PriceOverride != nil {
		offering.Price = *offered.PriceOverride
	}
	if offered.DurationOverride != nil {
		offering.Duration.ServiceMinutes = *offered.DurationOverride
	}

	return offering
}

package get_available_professionals

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableProfessionals "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_professionals"
)

// AvailableProfessionalsResponse HTTP response model
type AvailableProfessionalsResponse struct {
	Date          string         `json:"date"`
	ServiceID     int64          `json:"service_id"`
	Professionals []Professional `json:"professionals"`
}

// Professional карточка специалиста с ценой и длительностью услуги
type Professional struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Photo    *string `json:"photo"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableProfessionals.Response) *AvailableProfessionalsResponse {
	professionals := make([]Professional, len(resp.Professionals))
	for i, p := range resp.Professionals {
		professionals[i] = Professional{
			ID:       p.ID,
			Name:     p.Name,
			Photo:    p.Photo,
			Price:    p.Price,
			Duration: p.Duration,
		}
	}

	return &AvailableProfessionalsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		ServiceID:     resp.ServiceID,
		Professionals: professionals,
	}
}

package get_professional_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getProfessionalAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_professional_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TimeBlocks   TimeBlocks   `json:"time_blocks"`
	Professional Professional `json:"professional"`
	Service      Service      `json:"service"`
	Date         string       `json:"date"`
	Available    bool         `json:"available"`
	Message      string       `json:"message,omitempty"`
}

// TimeBlocks слоты, разбитые на утро и день
type TimeBlocks struct {
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
}

// Slot модель слота
type Slot struct {
	Time      string  `json:"time"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason"`
	Period    string  `json:"period"`
}

// Professional карточка специалиста
type Professional struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}

// Service услуга с учетом переопределений специалиста
type Service struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getProfessionalAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		TimeBlocks: TimeBlocks{
			Morning:   toSlots(resp.TimeBlocks.Morning),
			Afternoon: toSlots(resp.TimeBlocks.Afternoon),
		},
		Professional: Professional{
			ID:    resp.Professional.ID,
			Name:  resp.Professional.Name,
			Photo: resp.Professional.Photo,
		},
		Service: Service{
			ID:       resp.Service.ID,
			Name:     resp.Service.Name,
			Duration: resp.Service.Duration,
			Price:    resp.Service.Price,
		},
		Date:      resp.Date.Format(domain.DateFormat),
		Available: resp.Available,
		Message:   resp.Message,
	}
}

func toSlots(slots []domain.CandidateSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		var reason *string
		if s.Reason != nil {
			r := string(*s.Reason)
			reason = &r
		}
		result[i] = Slot{
			Time:      s.Time.String(),
			Available: s.Available,
			Reason:    reason,
			Period:    string(s.Period),
		}
	}
	return result
}

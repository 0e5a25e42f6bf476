package get_available_professionals

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса списка специалистов, доступных на дату
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата в часовом поясе компании (без времени)
}

// Response модель ответа
type Response struct {
	Date          time.Time
	ServiceID     int64
	Professionals []Professional
}

// Professional карточка специалиста с ценой и длительностью услуги у него
type Professional struct {
	domain.ProfessionalSummary
	Price    float64
	Duration int // длительность услуги в минутах, без подготовки и завершения
}

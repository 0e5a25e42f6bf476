package get_professional_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса слотов специалиста
type Request struct {
	ProfessionalID int64     // ID специалиста
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата в часовом поясе компании (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	TimeBlocks   domain.TimeBlocks
	Professional domain.ProfessionalSummary
	Service      ServiceInfo
	Date         time.Time
	Available    bool   // false, если специалист в этот день не работает
	Message      string // заполнено только при Available == false
}

// ServiceInfo услуга с учетом переопределений специалиста
type ServiceInfo struct {
	ID       int64
	Name     string
	Duration int // длительность услуги в минутах, без подготовки и завершения
	Price    float64
}

package get_professional_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getProfessionalAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_professional_availability"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingServiceID      = "ID услуги обязателен"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessionalNotFound  = "специалист не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceNotOffered     = "специалист не оказывает эту услугу"
	msgConfiguration         = "расписание компании настроено некорректно"
)

type Handler struct {
	useCase  GetProfessionalAvailabilityUseCase
	location *time.Location
	now      handlers.Clock
	logger   Logger
}

// NewHandler location - часовой пояс компании, в нем разбирается дата запроса
func NewHandler(useCase GetProfessionalAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability
// Query params: serviceId (required), date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.ParseInt(mux.Vars(r)["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /professionals/{id}/availability - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), h.location, h.now)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getProfessionalAvailability.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getProfessionalAvailability.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getProfessionalAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, domain.ErrServiceNotOffered):
			h.logger.Warn("GET /professionals/{id}/availability - Service not offered: professional_id=%d, service_id=%d",
				professionalID, serviceID)
			handlers.RespondUnprocessable(w, msgServiceNotOffered)

		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrConfiguration):
			h.logger.Error("GET /professionals/{id}/availability - Tenant misconfigured: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfiguration)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to get availability: professional_id=%d, service_id=%d, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/availability - Availability retrieved: professional_id=%d, service_id=%d, date=%s, slots_count=%d",
		professionalID, serviceID, date.Format(domain.DateFormat), result.TimeBlocks.Len())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

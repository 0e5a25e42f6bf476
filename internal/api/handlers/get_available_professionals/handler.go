package get_available_professionals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableProfessionals "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_professionals"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgConfiguration    = "расписание компании настроено некорректно"
)

type Handler struct {
	useCase  GetAvailableProfessionalsUseCase
	location *time.Location
	now      handlers.Clock
	logger   Logger
}

// NewHandler location - часовой пояс компании, в нем разбирается дата запроса
func NewHandler(useCase GetAvailableProfessionalsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/professionals
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /services/{id}/professionals - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), h.location, h.now)
	if err != nil {
		h.logger.Warn("GET /services/{id}/professionals - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableProfessionals.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableProfessionals.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/professionals - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrConfiguration):
			h.logger.Error("GET /services/{id}/professionals - Tenant misconfigured: service_id=%d, error=%v", serviceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfiguration)

		default:
			h.logger.Error("GET /services/{id}/professionals - Failed to list professionals: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/professionals - Professionals retrieved: service_id=%d, date=%s, count=%d",
		serviceID, date.Format(domain.DateFormat), len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

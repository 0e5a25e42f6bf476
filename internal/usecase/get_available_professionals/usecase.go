package get_available_professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
)

// UseCase use case для получения специалистов, работающих в указанную дату.
// Проверка дневная: слоты не генерируются.
type UseCase struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	resolver         WorkingHoursResolver
	exceptions       ExceptionChecker
	metrics          MetricsRecorder
	logger           Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	resolver WorkingHoursResolver,
	exceptions ExceptionChecker,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		resolver:         resolver,
		exceptions:       exceptions,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute возвращает специалистов, оказывающих услугу и работающих в дату.
// Специалист доступен, если у него есть рабочие часы на этот день недели
// и нет ни одного исключения на эту дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableProfessionals: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableProfessionals: service=%d, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableProfessionals: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableProfessionals: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	offerings, err := uc.professionalRepo.ListByService(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableProfessionals: failed to list professionals of service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}

	weekday := domain.WeekdayOf(req.Date)
	professionals := make([]Professional, 0, len(offerings))

	for _, po := range offerings {
		available, err := uc.isAvailable(ctx, &po.Professional, weekday, req)
		if err != nil {
			return nil, err
		}
		if uc.metrics != nil {
			uc.metrics.ObserveProfessional(available)
		}
		if !available {
			continue
		}

		offering := domain.ResolveOffering(service, &po.Offered)
		professionals = append(professionals, Professional{
			ProfessionalSummary: po.Professional.Summary(),
			Price:               offering.Price,
			Duration:            offering.Duration.ServiceMinutes,
		})
	}

	uc.logger.Info("GetAvailableProfessionals: %d of %d professionals available for service=%d on %s",
		len(professionals), len(offerings), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		ServiceID:     req.ServiceID,
		Professionals: professionals,
	}, nil
}

// isAvailable дневная проверка одного специалиста.
// Битое собственное расписание исключает только этого специалиста, отсутствие компании ломает весь запрос.
func (uc *UseCase) isAvailable(ctx context.Context, professional *domain.Professional, weekday domain.Weekday, req *Request) (bool, error) {
	workingHours, err := uc.resolver.Resolve(ctx, professional, weekday)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrMalformedSchedule):
			uc.logger.Warn("GetAvailableProfessionals: professional=%d skipped: %v", professional.ID, err)
			return false, nil
		case errors.Is(err, domain.ErrConfiguration):
			return false, err
		default:
			return false, fmt.Errorf("%w: failed to resolve working hours: %v", ErrInternal, err)
		}
	}
	if workingHours == nil {
		return false, nil
	}

	hasExceptions, err := uc.exceptions.HasExceptions(ctx, professional.ID, req.Date)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return !hasExceptions, nil
}

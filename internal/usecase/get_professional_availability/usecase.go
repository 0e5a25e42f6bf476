package get_professional_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots"
)

const outcomeAvailable = "available"

// UseCase use case для получения слотов специалиста на дату
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	resolver         WorkingHoursResolver
	collector        ConflictCollector
	metrics          MetricsRecorder
	logger           Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	resolver WorkingHoursResolver,
	collector ConflictCollector,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		resolver:         resolver,
		collector:        collector,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute возвращает слоты специалиста на дату.
// Отсутствие рабочих часов не ошибка: возвращается пустой результат с Available == false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetProfessionalAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetProfessionalAvailability: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Специалист и услуга
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetProfessionalAvailability: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetProfessionalAvailability: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetProfessionalAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetProfessionalAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 2. Связь специалист-услуга и переопределения
	offered, err := uc.professionalRepo.GetOfferedService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrOfferingNotFound) {
			uc.logger.Warn("GetProfessionalAvailability: professional=%d does not offer service=%d",
				req.ProfessionalID, req.ServiceID)
			return nil, ErrServiceNotOffered
		}
		uc.logger.Error("GetProfessionalAvailability: failed to get offering professional=%d service=%d: %v",
			req.ProfessionalID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
	}

	offering := domain.ResolveOffering(service, offered)
	if err := offering.Duration.Validate(); err != nil {
		uc.logger.Error("GetProfessionalAvailability: professional=%d service=%d: %v",
			req.ProfessionalID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidServiceDuration, err)
	}

	resp := &Response{
		Professional: professional.Summary(),
		Service: ServiceInfo{
			ID:       service.ID,
			Name:     service.Name,
			Duration: offering.Duration.ServiceMinutes,
			Price:    offering.Price,
		},
		Date: req.Date,
		TimeBlocks: domain.TimeBlocks{
			Morning:   make([]domain.CandidateSlot, 0),
			Afternoon: make([]domain.CandidateSlot, 0),
		},
	}

	// 3. Рабочие часы
	workingHours, err := uc.resolver.Resolve(ctx, professional, domain.WeekdayOf(req.Date))
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to resolve working hours: %v", ErrInternal, err)
	}

	if workingHours == nil {
		uc.logger.Info("GetProfessionalAvailability: professional=%d does not work on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		resp.Available = false
		resp.Message = domain.MsgNotAvailableForDate
		return resp, nil
	}

	// 4. Занятость на дату читается заново на каждый запрос
	bookings, err := uc.collector.FetchBookingOccupancies(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	exceptions, err := uc.collector.FetchExceptionOccupancies(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Генерация слотов
	blocks, err := slots.Generate(*workingHours, offering.Duration.TotalMinutes(), bookings, exceptions)
	if err != nil {
		uc.logger.Error("GetProfessionalAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.observe(blocks)

	uc.logger.Info("GetProfessionalAvailability: generated %d slots for professional=%d, service=%d, date=%s",
		blocks.Len(), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	resp.TimeBlocks = blocks
	resp.Available = true
	return resp, nil
}

func (uc *UseCase) observe(blocks domain.TimeBlocks) {
	if uc.metrics == nil {
		return
	}
	for _, slot := range blocks.All() {
		if slot.Reason != nil {
			uc.metrics.ObserveSlot(string(*slot.Reason))
			continue
		}
		uc.metrics.ObserveSlot(outcomeAvailable)
	}
}

package workinghours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
)

// Resolver определяет действующие рабочие часы специалиста на день недели.
// Расписания компании и специалиста никогда не смешиваются: берется ровно одно из них.
type Resolver struct {
	companyRepo      CompanyRepository
	professionalRepo ProfessionalScheduleRepository
	logger           Logger
}

// NewResolver создает новый экземпляр резолвера
func NewResolver(
	companyRepo CompanyRepository,
	professionalRepo ProfessionalScheduleRepository,
	logger Logger,
) *Resolver {
	return &Resolver{
		companyRepo:      companyRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Resolve возвращает рабочие часы или nil, если специалист в этот день не работает.
// Отсутствие строки расписания и явный выходной не различаются: оба дают nil.
//
// Ошибки:
//   - ErrCompanyNotConfigured - нужна компания, а её нет
//   - ErrMalformedSchedule - строка расписания нарушает инварианты
func (r *Resolver) Resolve(ctx context.Context, professional *domain.Professional, weekday domain.Weekday) (*domain.WorkingHours, error) {
	if !weekday.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(weekday))
	}

	var (
		entry  *domain.ScheduleEntry
		source string
		err    error
	)

	if professional.UsesCompanySchedule {
		source = "company"
		entry, err = r.companySchedule(ctx, professional, weekday)
	} else {
		source = "professional"
		entry, err = r.professionalRepo.GetSchedule(ctx, professional.ID, weekday)
		if err != nil {
			r.logger.Error("Resolve: failed to get schedule of professional=%d weekday=%s: %v",
				professional.ID, weekday, err)
			err = fmt.Errorf("%w: failed to get professional schedule: %v", ErrInternal, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if entry == nil || !entry.WorkingHours.IsOpen {
		return nil, nil
	}

	wh := entry.WorkingHours
	if err := wh.Validate(); err != nil {
		r.logger.Warn("Resolve: %s schedule for professional=%d weekday=%s is malformed: %v",
			source, professional.ID, weekday, err)
		return nil, fmt.Errorf("%w: %s schedule, weekday=%s: %v", ErrMalformedSchedule, source, weekday, err)
	}

	return &wh, nil
}

func (r *Resolver) companySchedule(ctx context.Context, professional *domain.Professional, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	company, err := r.companyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			r.logger.Error("Resolve: professional=%d uses company schedule, but company record is missing",
				professional.ID)
			return nil, ErrCompanyNotConfigured
		}
		r.logger.Error("Resolve: failed to get company: %v", err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	entry, err := r.companyRepo.GetSchedule(ctx, company.ID, weekday)
	if err != nil {
		r.logger.Error("Resolve: failed to get schedule of company=%d weekday=%s: %v", company.ID, weekday, err)
		return nil, fmt.Errorf("%w: failed to get company schedule: %v", ErrInternal, err)
	}

	return entry, nil
}

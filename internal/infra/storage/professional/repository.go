package professional

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения специалистов, их услуг и расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает специалиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"photo",
		"uses_company_schedule",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var professional domain.Professional
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&professional.ID,
		&professional.Name,
		&professional.Photo,
		&professional.UsesCompanySchedule,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	return &professional, nil
}

// GetOfferedService получает связь специалист-услуга с переопределениями цены и длительности
func (r *Repository) GetOfferedService(ctx context.Context, professionalID, serviceID int64) (*domain.OfferedService, error) {
	query, args, err := psqlbuilder.Select(
		"professional_id",
		"service_id",
		"price",
		"duration",
	).
		From("professional_services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferedService - build select query: %v", ErrBuildQuery, err)
	}

	var offered domain.OfferedService
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&offered.ProfessionalID,
		&offered.ServiceID,
		&offered.PriceOverride,
		&offered.DurationOverride,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferedService - scan offering: %v", ErrScanRow, err)
	}

	return &offered, nil
}

// ListByService получает всех специалистов, оказывающих услугу, вместе с их переопределениями
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]*domain.ProfessionalOffering, error) {
	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.name",
		"p.photo",
		"p.uses_company_schedule",
		"ps.service_id",
		"ps.price",
		"ps.duration",
	).
		From("professionals p").
		Join("professional_services ps ON ps.professional_id = p.id").
		Where(squirrel.Eq{"ps.service_id": serviceID}).
		OrderBy("p.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ProfessionalOffering, 0)
	for rows.Next() {
		var item domain.ProfessionalOffering
		if err := rows.Scan(
			&item.Professional.ID,
			&item.Professional.Name,
			&item.Professional.Photo,
			&item.Professional.UsesCompanySchedule,
			&item.Offered.ServiceID,
			&item.Offered.PriceOverride,
			&item.Offered.DurationOverride,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByService - scan row: %v", ErrScanRow, err)
		}
		item.Offered.ProfessionalID = item.Professional.ID
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByService - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetSchedule получает строку собственного расписания специалиста на день недели.
// Возвращает nil без ошибки, если строки нет.
func (r *Repository) GetSchedule(ctx context.Context, professionalID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select(schedule.Columns...).
		From("professional_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var row schedule.Row
	err = r.db.QueryRowContext(ctx, query, args...).Scan(row.Dest()...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	return row.ToEntry(), nil
}

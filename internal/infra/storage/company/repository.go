package company

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

// Repository репозиторий для чтения компании тенанта и её расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компании
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает единственную компанию тенанта.
// Если записей несколько, берется компания с наименьшим ID.
func (r *Repository) Get(ctx context.Context) (*domain.Company, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
	).
		From("companies").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var company domain.Company
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.Timezone,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan company: %v", ErrScanRow, err)
	}

	return &company, nil
}

// GetSchedule получает строку расписания компании на день недели.
// Возвращает nil без ошибки, если строки нет.
func (r *Repository) GetSchedule(ctx context.Context, companyID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select(schedule.Columns...).
		From("company_schedules").
		Where(squirrel.Eq{"company_id": companyID}).
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

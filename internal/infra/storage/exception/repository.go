package exception

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения исключений в расписании специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalAndDate получает все исключения специалиста, дата которых совпадает с date
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Exception, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"exception_date",
		"start_time",
		"end_time",
		"reason",
	).
		From("professional_exceptions").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"exception_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.Exception, 0)
	for rows.Next() {
		var e domain.Exception
		if err := rows.Scan(
			&e.ID,
			&e.ProfessionalID,
			&e.Date,
			&e.StartTime,
			&e.EndTime,
			&e.Reason,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByProfessionalAndDate - scan exception: %v", ErrScanRow, err)
		}
		exceptions = append(exceptions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByProfessionalAndDate получает неотмененные бронирования специалиста на дату.
// Каждое бронирование дополняется длительностью СВОЕЙ услуги (длительность + подготовка + завершение),
// потому что занятость определяется записанной услугой, а не той, что планируется сейчас.
// Результат отсортирован по времени начала.
func (r *Repository) GetActiveByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error) {
	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.professional_id",
		"b.service_id",
		"b.booking_date",
		"b.start_time",
		"b.status",
		"s.duration_minutes",
		"s.preparation_minutes",
		"s.post_service_minutes",
	).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{"b.professional_id": professionalID}).
		Where(squirrel.Eq{"b.booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"b.status": inactive}).
		OrderBy("b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.ProfessionalID,
			&booking.ServiceID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Status,
			&booking.ServiceDuration.ServiceMinutes,
			&booking.ServiceDuration.PreparationMinutes,
			&booking.ServiceDuration.PostServiceMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

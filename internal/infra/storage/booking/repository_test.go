package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var bookingColumns = []string{
	"id", "professional_id", "service_id", "booking_date", "start_time", "status",
	"duration_minutes", "preparation_minutes", "post_service_minutes",
}

func TestRepository_GetActiveByProfessionalAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings b JOIN services s ON s.id = b.service_id WHERE b.professional_id = $1 AND b.booking_date = $2 AND b.status NOT IN ($3,$4,$5) ORDER BY b.start_time ASC")).
		WithArgs(int64(7), "2026-10-19", "cancelled", "cancelled_by_client", "cancelled_by_professional").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(int64(1), int64(7), int64(3), date, "10:00:00", "confirmed", 30, 5, 10).
			AddRow(int64(2), int64(7), int64(4), date, "14:30:00", "pending", 90, 0, 0))

	bookings, err := repo.GetActiveByProfessionalAndDate(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "10:00", bookings[0].StartTime.String())
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, 45, bookings[0].ServiceDuration.TotalMinutes())
	assert.Equal(t, int64(4), bookings[1].ServiceID)
	assert.Equal(t, 90, bookings[1].ServiceDuration.TotalMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByProfessionalAndDate_Errors(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM bookings").WillReturnError(errors.New("connection reset"))

		_, err = NewRepository(db).GetActiveByProfessionalAndDate(context.Background(), 7, date)
		assert.ErrorIs(t, err, ErrExecQuery)
	})

	t.Run("malformed start time", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM bookings").
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(int64(1), int64(7), int64(3), date, "ten o'clock", "confirmed", 30, 0, 0))

		_, err = NewRepository(db).GetActiveByProfessionalAndDate(context.Background(), 7, date)
		assert.ErrorIs(t, err, ErrScanRow)
	})
}

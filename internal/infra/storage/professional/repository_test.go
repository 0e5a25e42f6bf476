package professional

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, photo, uses_company_schedule FROM professionals WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "photo", "uses_company_schedule"}).
			AddRow(int64(7), "Anna", "anna.jpg", true))

	p, err := NewRepository(db).GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.Name)
	require.NotNil(t, p.Photo)
	assert.Equal(t, "anna.jpg", *p.Photo)
	assert.True(t, p.UsesCompanySchedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM professionals").WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestRepository_GetOfferedService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM professional_services WHERE professional_id = $1 AND service_id = $2")).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"professional_id", "service_id", "price", "duration"}).
			AddRow(int64(7), int64(3), 40.0, nil))

	offered, err := NewRepository(db).GetOfferedService(context.Background(), 7, 3)
	require.NoError(t, err)
	require.NotNil(t, offered.PriceOverride)
	assert.Equal(t, 40.0, *offered.PriceOverride)
	assert.Nil(t, offered.DurationOverride)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOfferedService_NotOffered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM professional_services").WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetOfferedService(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestRepository_ListByService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM professionals p JOIN professional_services ps ON ps.professional_id = p.id WHERE ps.service_id = $1 ORDER BY p.id ASC")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "photo", "uses_company_schedule", "service_id", "price", "duration"}).
			AddRow(int64(7), "Anna", nil, false, int64(3), nil, nil).
			AddRow(int64(8), "Boris", "boris.png", true, int64(3), 55.0, 45))

	list, err := NewRepository(db).ListByService(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(7), list[0].Offered.ProfessionalID)
	assert.Nil(t, list[0].Professional.Photo)
	assert.Nil(t, list[0].Offered.PriceOverride)
	require.NotNil(t, list[1].Offered.DurationOverride)
	assert.Equal(t, 45, *list[1].Offered.DurationOverride)
	assert.True(t, list[1].Professional.UsesCompanySchedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByService_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM professionals").WillReturnError(errors.New("timeout"))

	_, err = NewRepository(db).ListByService(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM professional_schedules WHERE professional_id = $1 AND weekday = $2")).
		WithArgs(int64(7), int64(domain.Friday)).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "open_time", "close_time", "has_break", "break_start", "break_end"}).
			AddRow(5, true, "10:00:00", "16:00:00", false, nil, nil))

	entry, err := NewRepository(db).GetSchedule(context.Background(), 7, domain.Friday)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, domain.Friday, entry.Weekday)
	assert.Equal(t, "10:00", entry.WorkingHours.OpenTime.String())
	assert.False(t, entry.WorkingHours.HasBreak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "preparation_minutes", "post_service_minutes", "price"}).
			AddRow(int64(3), "Haircut", 30, 5, 10, 25.5))

	service, err := NewRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", service.Name)
	assert.Equal(t, 45, service.Duration().TotalMinutes())
	assert.Equal(t, 25.5, service.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM services").WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type bookingRepoStub struct {
	bookings []*domain.Booking
	err      error
}

func (s *bookingRepoStub) GetActiveByProfessionalAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type exceptionRepoStub struct {
	exceptions []*domain.Exception
	err        error
}

func (s *exceptionRepoStub) GetByProfessionalAndDate(context.Context, int64, time.Time) ([]*domain.Exception, error) {
	return s.exceptions, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestCollector_FetchBookingOccupancies(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{
		{
			ID:        1,
			StartTime: types.MustTimeString("10:00"),
			Status:    domain.StatusConfirmed,
			ServiceDuration: domain.ServiceDuration{
				ServiceMinutes:     60,
				PreparationMinutes: 10,
				PostServiceMinutes: 5,
			},
		},
		{
			ID:              2,
			StartTime:       types.MustTimeString("12:00"),
			Status:          domain.StatusCancelledByClient,
			ServiceDuration: domain.ServiceDuration{ServiceMinutes: 30},
		},
		{
			ID:              3,
			StartTime:       types.MustTimeString("14:00"),
			Status:          domain.StatusPending,
			ServiceDuration: domain.ServiceDuration{ServiceMinutes: 30},
		},
	}}
	collector := NewCollector(repo, &exceptionRepoStub{}, nopLogger{})

	got, err := collector.FetchBookingOccupancies(context.Background(), 7, day)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "10:00", got[0].StartTime.String())
	assert.Equal(t, 75, got[0].OccupiedMinutes)
	assert.Equal(t, "11:15", got[0].End().String())

	assert.Equal(t, "14:00", got[1].StartTime.String())
	assert.Equal(t, 30, got[1].OccupiedMinutes)
}

func TestCollector_FetchBookingOccupancies_Error(t *testing.T) {
	collector := NewCollector(&bookingRepoStub{err: errors.New("db down")}, &exceptionRepoStub{}, nopLogger{})

	got, err := collector.FetchBookingOccupancies(context.Background(), 7, day)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestCollector_FetchExceptionOccupancies(t *testing.T) {
	repo := &exceptionRepoStub{exceptions: []*domain.Exception{
		{ID: 1, StartTime: types.MustTimeString("15:00"), EndTime: types.MustTimeString("16:00")},
	}}
	collector := NewCollector(&bookingRepoStub{}, repo, nopLogger{})

	got, err := collector.FetchExceptionOccupancies(context.Background(), 7, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "15:00", got[0].StartTime.String())
	assert.Equal(t, "16:00", got[0].EndTime.String())

	has, err := collector.HasExceptions(context.Background(), 7, day)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCollector_HasExceptions_Empty(t *testing.T) {
	collector := NewCollector(&bookingRepoStub{}, &exceptionRepoStub{}, nopLogger{})

	has, err := collector.HasExceptions(context.Background(), 7, day)
	require.NoError(t, err)
	assert.False(t, has)

	collector = NewCollector(&bookingRepoStub{}, &exceptionRepoStub{err: errors.New("timeout")}, nopLogger{})
	_, err = collector.HasExceptions(context.Background(), 7, day)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

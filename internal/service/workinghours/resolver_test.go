package workinghours

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type companyRepoStub struct {
	company   *domain.Company
	err       error
	schedules map[domain.Weekday]*domain.ScheduleEntry
}

func (s *companyRepoStub) Get(context.Context) (*domain.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.company, nil
}

func (s *companyRepoStub) GetSchedule(_ context.Context, _ int64, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	return s.schedules[weekday], nil
}

type professionalRepoStub struct {
	schedules map[domain.Weekday]*domain.ScheduleEntry
	err       error
}

func (s *professionalRepoStub) GetSchedule(_ context.Context, _ int64, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.schedules[weekday], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func entry(weekday domain.Weekday, isOpen bool, open, close string) *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		Weekday: weekday,
		WorkingHours: domain.WorkingHours{
			IsOpen:    isOpen,
			OpenTime:  types.MustTimeString(open),
			CloseTime: types.MustTimeString(close),
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	company := &companyRepoStub{
		company: &domain.Company{ID: 1},
		schedules: map[domain.Weekday]*domain.ScheduleEntry{
			domain.Monday: entry(domain.Monday, true, "08:00", "20:00"),
			domain.Sunday: entry(domain.Sunday, false, "00:00", "00:00"),
		},
	}
	own := &professionalRepoStub{
		schedules: map[domain.Weekday]*domain.ScheduleEntry{
			domain.Monday:  entry(domain.Monday, true, "10:00", "14:00"),
			domain.Tuesday: entry(domain.Tuesday, false, "10:00", "14:00"),
		},
	}
	resolver := NewResolver(company, own, nopLogger{})

	tests := []struct {
		name         string
		usesCompany  bool
		weekday      domain.Weekday
		wantOpen     string
		wantNoAnswer bool
	}{
		{name: "own schedule", weekday: domain.Monday, wantOpen: "10:00"},
		{name: "company schedule", usesCompany: true, weekday: domain.Monday, wantOpen: "08:00"},
		{name: "own closed day", weekday: domain.Tuesday, wantNoAnswer: true},
		{name: "own missing row", weekday: domain.Wednesday, wantNoAnswer: true},
		{name: "company closed day", usesCompany: true, weekday: domain.Sunday, wantNoAnswer: true},
		{name: "company missing row", usesCompany: true, weekday: domain.Friday, wantNoAnswer: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Professional{ID: 7, UsesCompanySchedule: tt.usesCompany}
			wh, err := resolver.Resolve(context.Background(), p, tt.weekday)
			require.NoError(t, err)

			if tt.wantNoAnswer {
				assert.Nil(t, wh)
				return
			}
			require.NotNil(t, wh)
			assert.Equal(t, tt.wantOpen, wh.OpenTime.String())
		})
	}
}

func TestResolver_CompanyMissing(t *testing.T) {
	resolver := NewResolver(
		&companyRepoStub{err: companyRepo.ErrCompanyNotFound},
		&professionalRepoStub{},
		nopLogger{},
	)

	_, err := resolver.Resolve(context.Background(), &domain.Professional{ID: 7, UsesCompanySchedule: true}, domain.Monday)
	assert.ErrorIs(t, err, ErrCompanyNotConfigured)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	// Специалисту со своим расписанием компания не нужна
	_, err = resolver.Resolve(context.Background(), &domain.Professional{ID: 8}, domain.Monday)
	assert.NoError(t, err)
}

func TestResolver_MalformedSchedule(t *testing.T) {
	broken := entry(domain.Monday, true, "09:00", "17:00")
	broken.WorkingHours.HasBreak = true
	broken.WorkingHours.BreakStart = ptr.Ptr(types.MustTimeString("16:30"))
	broken.WorkingHours.BreakEnd = ptr.Ptr(types.MustTimeString("18:00"))

	resolver := NewResolver(
		&companyRepoStub{},
		&professionalRepoStub{schedules: map[domain.Weekday]*domain.ScheduleEntry{domain.Monday: broken}},
		nopLogger{},
	)

	wh, err := resolver.Resolve(context.Background(), &domain.Professional{ID: 7}, domain.Monday)
	assert.Nil(t, wh)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestResolver_StorageError(t *testing.T) {
	resolver := NewResolver(
		&companyRepoStub{err: errors.New("connection refused")},
		&professionalRepoStub{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := resolver.Resolve(context.Background(), &domain.Professional{ID: 7}, domain.Monday)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = resolver.Resolve(context.Background(), &domain.Professional{ID: 7, UsesCompanySchedule: true}, domain.Monday)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, domain.ErrConfiguration)
}

func TestResolver_InvalidWeekday(t *testing.T) {
	resolver := NewResolver(&companyRepoStub{}, &professionalRepoStub{}, nopLogger{})

	_, err := resolver.Resolve(context.Background(), &domain.Professional{ID: 7}, domain.Weekday(0))
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

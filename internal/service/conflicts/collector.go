package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Collector собирает интервалы занятости специалиста на дату
type Collector struct {
	bookingRepo   BookingRepository
	exceptionRepo ExceptionRepository
	logger        Logger
}

// NewCollector создает новый экземпляр коллектора
func NewCollector(bookingRepo BookingRepository, exceptionRepo ExceptionRepository, logger Logger) *Collector {
	return &Collector{
		bookingRepo:   bookingRepo,
		exceptionRepo: exceptionRepo,
		logger:        logger,
	}
}

// FetchBookingOccupancies возвращает занятость существующими записями.
// Длина занятости считается по услуге самой записи: длительность + подготовка + завершение.
func (c *Collector) FetchBookingOccupancies(ctx context.Context, professionalID int64, date time.Time) ([]domain.BookingOccupancy, error) {
	bookings, err := c.bookingRepo.GetActiveByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		c.logger.Error("FetchBookingOccupancies: failed to get bookings of professional=%d date=%s: %v",
			professionalID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: bookings: %v", ErrFetchFailed, err)
	}

	occupancies := make([]domain.BookingOccupancy, 0, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}

		total := b.ServiceDuration.TotalMinutes()
		if total <= 0 {
			c.logger.Warn("FetchBookingOccupancies: booking=%d has non-positive duration %d, ignored", b.ID, total)
			continue
		}

		occupancies = append(occupancies, domain.BookingOccupancy{
			StartTime:       b.StartTime,
			OccupiedMinutes: total,
		})
	}

	return occupancies, nil
}

// FetchExceptionOccupancies возвращает интервалы исключений на дату
func (c *Collector) FetchExceptionOccupancies(ctx context.Context, professionalID int64, date time.Time) ([]domain.ExceptionOccupancy, error) {
	exceptions, err := c.exceptionRepo.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		c.logger.Error("FetchExceptionOccupancies: failed to get exceptions of professional=%d date=%s: %v",
			professionalID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: exceptions: %v", ErrFetchFailed, err)
	}

	occupancies := make([]domain.ExceptionOccupancy, 0, len(exceptions))
	for _, e := range exceptions {
		occupancies = append(occupancies, domain.ExceptionOccupancy{
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	return occupancies, nil
}

// HasExceptions true, если на дату у специалиста есть хотя бы одно исключение
func (c *Collector) HasExceptions(ctx context.Context, professionalID int64, date time.Time) (bool, error) {
	occupancies, err := c.FetchExceptionOccupancies(ctx, professionalID, date)
	if err != nil {
		return false, err
	}
	return len(occupancies) > 0, nil
}

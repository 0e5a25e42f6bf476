package slots

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Evaluate решает, доступен ли слот, начинающийся в start и длящийся totalMinutes.
//
// Проверки выполняются в фиксированном порядке, первая сработавшая определяет причину:
//  1. перерыв в рабочих часах        -> domain.ReasonBreakTime
//  2. пересечение с бронированием    -> domain.ReasonExistingBooking
//  3. пересечение с исключением      -> domain.ReasonException
//
// Порядок влияет только на причину, а не на доступность, но UI опирается на причину,
// поэтому порядок является частью контракта.
//
// Вызывающий гарантирует, что start + totalMinutes не выходит за 24:00.
func Evaluate(
	start types.TimeString,
	totalMinutes int,
	workingHours domain.WorkingHours,
	bookings []domain.BookingOccupancy,
	exceptions []domain.ExceptionOccupancy,
) (bool, *domain.SlotReason) {
	end, err := start.AddMinutes(totalMinutes)
	if err != nil {
		// Программная ошибка: генератор не выпускает слоты за пределы суток
		panic(err)
	}

	if workingHours.HasBreak && workingHours.BreakStart != nil && workingHours.BreakEnd != nil {
		if types.Overlaps(start, end, *workingHours.BreakStart, *workingHours.BreakEnd) {
			return false, reason(domain.ReasonBreakTime)
		}
	}

	for _, b := range bookings {
		if types.Overlaps(start, end, b.StartTime, b.End()) {
			return false, reason(domain.ReasonExistingBooking)
		}
	}

	for _, e := range exceptions {
		if types.Overlaps(start, end, e.StartTime, e.EndTime) {
			return false, reason(domain.ReasonException)
		}
	}

	return true, nil
}

func reason(r domain.SlotReason) *domain.SlotReason {
	return &r
}

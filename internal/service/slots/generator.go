package slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Generate проходит рабочее окно с шагом totalMinutes и возвращает слоты, разбитые на утро и день.
//
// Курсор стартует с OpenTime и двигается, пока слот целиком помещается до CloseTime.
// Если слот попадает на перерыв, он не выпускается, а курсор переносится сразу на BreakEnd:
// перерыв дает один прыжок, а не серию недоступных слотов.
// Слоты с бронированием или исключением выпускаются как недоступные.
//
// Шаг равен длине занятости, поэтому слоты строго возрастают и не пересекаются.
// Часть дня определяется только часом начала слота.
func Generate(
	workingHours domain.WorkingHours,
	totalMinutes int,
	bookings []domain.BookingOccupancy,
	exceptions []domain.ExceptionOccupancy,
) (domain.TimeBlocks, error) {
	if totalMinutes <= 0 {
		return domain.TimeBlocks{}, fmt.Errorf("%w: got %d minutes", ErrInvalidDuration, totalMinutes)
	}

	blocks := domain.TimeBlocks{
		Morning:   make([]domain.CandidateSlot, 0),
		Afternoon: make([]domain.CandidateSlot, 0),
	}

	if !workingHours.IsOpen {
		return blocks, nil
	}

	cursor := workingHours.OpenTime
	for {
		slotEnd, err := cursor.AddMinutes(totalMinutes)
		if err != nil || slotEnd.IsAfter(workingHours.CloseTime) {
			break
		}

		available, why := Evaluate(cursor, totalMinutes, workingHours, bookings, exceptions)

		if why != nil && *why == domain.ReasonBreakTime {
			// BreakEnd > cursor, раз слот пересек перерыв, поэтому цикл продвигается
			cursor = *workingHours.BreakEnd
			continue
		}

		slot := domain.CandidateSlot{
			Time:      cursor,
			Available: available,
			Reason:    why,
			Period:    domain.PeriodOf(cursor),
		}
		if slot.Period == domain.PeriodMorning {
			blocks.Morning = append(blocks.Morning, slot)
		} else {
			blocks.Afternoon = append(blocks.Afternoon, slot)
		}

		cursor = slotEnd
	}

	return blocks, nil
}

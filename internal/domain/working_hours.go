package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WorkingHours рабочее окно на конкретный день недели.
// Если IsOpen == false, остальные поля не имеют смысла и слоты не генерируются.
// Ночные смены не поддерживаются: открытие и закрытие в пределах одних суток.
type WorkingHours struct {
	IsOpen     bool
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	HasBreak   bool
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// ScheduleEntry строка расписания (компании или специалиста) на день недели
type ScheduleEntry struct {
	Weekday      Weekday
	WorkingHours WorkingHours
}

// Validate проверяет инварианты открытого дня:
// OpenTime < CloseTime; при наличии перерыва BreakStart < BreakEnd
// и оба лежат внутри [OpenTime, CloseTime].
func (wh *WorkingHours) Validate() error {
	if !wh.IsOpen {
		return nil
	}

	if !wh.OpenTime.IsBefore(wh.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", wh.OpenTime, wh.CloseTime)
	}

	if !wh.HasBreak {
		return nil
	}

	if wh.BreakStart == nil || wh.BreakEnd == nil {
		return fmt.Errorf("break is enabled but its bounds are not set")
	}

	if !wh.BreakStart.IsBefore(*wh.BreakEnd) {
		return fmt.Errorf("break start %s must be before break end %s", *wh.BreakStart, *wh.BreakEnd)
	}

	if wh.BreakStart.IsBefore(wh.OpenTime) || wh.BreakEnd.IsAfter(wh.CloseTime) {
		return fmt.Errorf("break %s-%s must lie within working hours %s-%s",
			*wh.BreakStart, *wh.BreakEnd, wh.OpenTime, wh.CloseTime)
	}

	return nil
}

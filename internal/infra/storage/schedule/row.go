package schedule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Columns колонки строки расписания, общие для company_schedules и professional_schedules
var Columns = []string{
	"weekday",
	"is_open",
	"open_time",
	"close_time",
	"has_break",
	"break_start",
	"break_end",
}

// Row строка расписания в том виде, в каком она лежит в БД.
// Время открытия и закрытия может быть NULL для выходных дней.
type Row struct {
	Weekday    int
	IsOpen     bool
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString
	HasBreak   bool
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// Dest указатели для rows.Scan в порядке Columns
func (r *Row) Dest() []interface{} {
	return []interface{}{
		&r.Weekday,
		&r.IsOpen,
		&r.OpenTime,
		&r.CloseTime,
		&r.HasBreak,
		&r.BreakStart,
		&r.BreakEnd,
	}
}

// ToEntry конвертирует строку в доменную модель.
// Инварианты здесь не проверяются: открытый день без времени получит 00:00-00:00
// и будет отклонен при валидации рабочих часов.
func (r *Row) ToEntry() *domain.ScheduleEntry {
	wh := domain.WorkingHours{
		IsOpen:     r.IsOpen,
		HasBreak:   r.HasBreak,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
	if r.OpenTime != nil {
		wh.OpenTime = *r.OpenTime
	}
	if r.CloseTime != nil {
		wh.CloseTime = *r.CloseTime
	}

	return &domain.ScheduleEntry{
		Weekday:      domain.Weekday(r.Weekday),
		WorkingHours: wh,
	}
}

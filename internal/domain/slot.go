package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// SlotReason причина недоступности слота
type SlotReason string

const (
	ReasonBreakTime       SlotReason = "break_time"
	ReasonExistingBooking SlotReason = "existing_booking"
	ReasonException       SlotReason = "exception"
)

// Period часть дня, в которую попадает слот
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// PeriodOf определяется только часом начала слота
func PeriodOf(t types.TimeString) Period {
	if t.Hour() < MiddayHour {
		return PeriodMorning
	}
	return PeriodAfternoon
}

// CandidateSlot слот-кандидат на запись. Создается генератором и нигде не сохраняется.
type CandidateSlot struct {
	Time      types.TimeString
	Available bool
	Reason    *SlotReason // заполнена только если Available == false
	Period    Period
}

// TimeBlocks слоты дня, разбитые на утро и день
type TimeBlocks struct {
	Morning   []CandidateSlot
	Afternoon []CandidateSlot
}

// Len общее количество слотов
func (b TimeBlocks) Len() int {
	return len(b.Morning) + len(b.Afternoon)
}

// All слоты в порядке времени
func (b TimeBlocks) All() []CandidateSlot {
	all := make([]CandidateSlot, 0, b.Len())
	all = append(all, b.Morning...)
	return append(all, b.Afternoon...)
}

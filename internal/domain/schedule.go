package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// SchedulePolicy расписание работы мастера.
// Передается явно в конструкторы workflow (а не глобальными константами),
// чтобы переопределять его per-deployment и в тестах.
type SchedulePolicy struct {
	OpenTime            types.TimeString // Начало рабочего дня ("09:00")
	CloseTime           types.TimeString // Конец рабочего дня ("20:00")
	SlotDurationMinutes int              // Шаг сетки слотов
	SundayClosed        bool             // Воскресенье - выходной
}

// DefaultSchedulePolicy returns the fixed business window: 09:00-20:00,
// 30-minute slots (22 bookable slots, 09:00 through 19:30), Sundays closed.
func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		SundayClosed:        true,
	}
}

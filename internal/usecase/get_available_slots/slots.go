package get_available_slots

import (
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateDailySlots генерирует полную сетку слотов рабочего дня.
// Сетка одинакова для любой даты: это статический шаблон расписания,
// а не производная от даты. Слоты идут от открытия с фиксированным шагом;
// слот, конец которого выходит за время закрытия, в сетку не попадает.
//
// Для окна 09:00-20:00 с шагом 30 минут сетка содержит ровно 22 слота:
// 09:00, 09:30, ..., 19:30.
func generateDailySlots(policy domain.SchedulePolicy) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := policy.OpenTime

	for current.IsBefore(policy.CloseTime) {
		slotEnd, err := current.AddMinutes(policy.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(policy.CloseTime) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(policy.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// takenTimes собирает множество занятых времен дня из активных записей.
// Каждое сохраненное время приводится к каноническому виду "HH:MM"
// (легаси-строки вида "9:00" нормализуются). Значения, которые не парсятся
// как время, молча выбрасываются из множества - кривая строка в БД не должна
// ронять выдачу слотов.
func takenTimes(appointments []*domain.Appointment) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(appointments))

	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		canonical, err := appointment.StartTime.Canonical()
		if err != nil {
			continue
		}

		seen[canonical] = struct{}{}
	}

	taken := make([]types.TimeString, 0, len(seen))
	for t := range seen {
		taken = append(taken, t)
	}

	// Порядок для множества не значим, но детерминированная выдача
	// упрощает клиентам сравнение ответов
	sort.Slice(taken, func(i, j int) bool { return taken[i].IsBefore(taken[j]) })

	return taken
}

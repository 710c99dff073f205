package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if len(req.Service) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateWeekday проверяет правило выходного дня
func validateWeekday(date time.Time, policy domain.SchedulePolicy) error {
	if policy.SundayClosed && date.Weekday() == time.Sunday {
		return ErrSundayClosed
	}
	return nil
}

// validateBusinessWindow проверяет, что время попадает в рабочее окно.
//
// Сравнение - лексикографическое, по строкам "HH:MM", как в исходной версии
// правила: время отклоняется, если оно строго меньше открытия или строго
// больше закрытия. Вход обязан быть каноническим (с ведущими нулями), иначе
// порядок строк не совпадает с порядком времен - канонизация выполняется
// на границе, в ToUseCaseRequest/Canonical.
//
// Граница закрытия ("20:00") проходит проверку окна: в сетку слотов она
// все равно не попадает, последний слот - 19:30.
func validateBusinessWindow(startTime types.TimeString, policy domain.SchedulePolicy) error {
	if startTime.IsBefore(policy.OpenTime) || startTime.IsAfter(policy.CloseTime) {
		return fmt.Errorf("%w: %s is outside %s-%s", ErrOutsideBusinessHours,
			startTime, policy.OpenTime, policy.CloseTime)
	}
	return nil
}

// hasConflict проверяет, занят ли слот активной записью.
// Сравнение ведется по каноническим временам; записи с непарсящимся временем
// пропускаются - так же, как при построении множества занятых слотов.
func hasConflict(startTime types.TimeString, appointments []*domain.Appointment) bool {
	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		canonical, err := appointment.StartTime.Canonical()
		if err != nil {
			continue
		}

		if canonical == startTime {
			return true
		}
	}

	return false
}

package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для получения сетки слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	policy          domain.SchedulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute возвращает полную сетку слотов дня и множество занятых времен.
// Недоступность хранилища деградирует до пустого множества занятых слотов:
// выдача сетки важнее точности занятости, ошибка логируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	slots, err := generateDailySlots(uc.policy)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	filter := domain.AppointmentsFilter{
		Date:            &req.Date,
		IncludeTerminal: false, // rejected/cancelled не занимают слот
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for %s, degrading to empty taken set: %v",
			req.Date.Format(domain.DateFormat), err)
		appointments = nil
	}

	taken := takenTimes(appointments)

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, taken=%d",
		req.Date.Format(domain.DateFormat), len(slots), len(taken))

	return &Response{
		Date:  req.Date,
		Slots: slots,
		Taken: taken,
	}, nil
}

package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	notifier        Notifier
	txManager       TransactionManager
	policy          domain.SchedulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	notifier Notifier,
	txManager TransactionManager,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		txManager:       txManager,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет создание записи.
//
// Правила проверяются по порядку, первая сработавшая завершает запрос:
// выходной день, рабочее окно, занятость слота. Проверка занятости и вставка
// выполняются в одной сериализуемой транзакции, чтобы два одновременных
// запроса на один слот не прошли оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%q, date=%s, time=%s",
		req.UserID, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Время приводится к каноническому виду один раз; дальше все проверки
	// (окно, конфликт) работают с одной и той же формой
	startTime, err := req.StartTime.Canonical()
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем существование пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Правило выходного дня
	if err := validateWeekday(req.Date, uc.policy); err != nil {
		uc.logger.Warn("CreateAppointment: sunday closed, date=%s", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Правило рабочего окна
	if err := validateBusinessWindow(startTime, uc.policy); err != nil {
		uc.logger.Warn("CreateAppointment: time %s outside business hours", startTime)
		return nil, err
	}

	var result *domain.Appointment

	// 5. Проверка занятости слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.AppointmentsFilter{
			Date:            &req.Date,
			IncludeTerminal: false, // rejected/cancelled не занимают слот
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if hasConflict(startTime, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), startTime)
			return fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date.Format(domain.DateFormat), startTime)
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			UserID:    req.UserID,
			Service:   req.Service,
			Date:      req.Date,
			StartTime: startTime,
			Status:    domain.StatusPending,
		})
		if err != nil {
			// Уникальный индекс мог сработать раньше нашей проверки
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date.Format(domain.DateFormat), startTime)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Уведомление отправляется в фоне и никогда не влияет на результат:
	// запись уже сохранена, ошибка отправки только логируется
	go func(service, date, startTime, phone string) {
		if err := uc.notifier.Notify(context.Background(), service, date, startTime, phone); err != nil {
			uc.logger.Error("CreateAppointment: notification failed for appointment id=%d: %v", result.ID, err)
		}
	}(result.Service, result.Date.Format(domain.DateFormat), result.StartTime.String(), user.Phone)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		Service:   result.Service,
		Date:      result.Date,
		StartTime: result.StartTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

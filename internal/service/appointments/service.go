package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями: списки, решения администратора,
// отмена владельцем. Создание записи живет в отдельном use case.
type Service struct {
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// GetUserAppointments получает записи пользователя в порядке создания.
// Недоступность хранилища деградирует до пустого списка: ошибка логируется,
// клиент получает пустую историю вместо падения.
func (s *Service) GetUserAppointments(ctx context.Context, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d", userID)

	appointments, err := s.appointmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d, degrading to empty list: %v", userID, err)
		return models.FromDomainAppointmentList(nil), nil
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(appointments), userID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetAdminBoard получает записи, сгруппированные по статусу, для админ-панели.
// date=nil означает "за все время". Доступно только администратору.
func (s *Service) GetAdminBoard(ctx context.Context, requestingUserID int64, date *time.Time) (*models.AdminBoardResponse, error) {
	if date != nil {
		s.logger.Info("GetAdminBoard: user=%d, date=%s", requestingUserID, date.Format(domain.DateFormat))
	} else {
		s.logger.Info("GetAdminBoard: user=%d, all dates", requestingUserID)
	}

	if err := s.checkAdminAccess(ctx, requestingUserID); err != nil {
		return nil, err
	}

	// Терминальные статусы нужны: панель rejected строится из них
	filter := domain.AppointmentsFilter{
		Date:            date,
		IncludeTerminal: true,
	}

	appointments, err := s.appointmentRepo.GetWithOwner(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBoard: repository error, degrading to empty board: %v", err)
		return models.FromDomainBoard(nil), nil
	}

	s.logger.Info("GetAdminBoard: fetched %d appointments", len(appointments))
	return models.FromDomainBoard(appointments), nil
}

// UpdateStatus выставляет статус записи решением администратора.
// Статус валидируется по закрытому набору из четырех значений. Повторный
// вызов с тем же статусом безвреден. Несуществующий ID - no-op: решение по
// исчезнувшей записи не считается ошибкой.
// Конфликт слота не перепроверяется, уведомления не отправляются.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: appointment=%d, status=%s, user=%d", appointmentID, req.Status, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment=%d not found, nothing to update", appointmentID)
			return nil
		}
		s.logger.Error("UpdateStatus: repository error for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment=%d set to %s", appointmentID, newStatus)
	return nil
}

// Cancel отменяет запись по просьбе владельца.
// Чужая или несуществующая запись - молчаливый no-op: статус не меняется,
// вызывающая сторона получает nil и делает обычный redirect.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: appointment=%d, user=%d", appointmentID, req.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment=%d not found, nothing to cancel", appointmentID)
			return nil
		}
		s.logger.Error("Cancel: repository error for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appointment.UserID != req.UserID {
		s.logger.Warn("Cancel: appointment=%d belongs to user=%d, not user=%d, ignoring",
			appointmentID, appointment.UserID, req.UserID)
		return nil
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment=%d disappeared during cancellation", appointmentID)
			return nil
		}
		s.logger.Error("Cancel: repository error for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment=%d cancelled", appointmentID)
	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - repository error: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}

package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
)

// Service сервис идентификации пользователей.
// Телефон - неаутентифицированный идентификатор: кто его ввел, тот и владелец.
type Service struct {
	userRepo    UserRepository
	adminSecret string
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, adminSecret string, logger Logger) *Service {
	return &Service{
		userRepo:    userRepo,
		adminSecret: adminSecret,
		logger:      logger,
	}
}

// Login находит пользователя по телефону или создает его при первом входе.
// Флаг администратора выставляется один раз при создании - сравнением
// введенного значения с настроенным админским секретом - и далее не меняется.
func (s *Service) Login(ctx context.Context, phone string) (*domain.User, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return nil, fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err == nil {
		s.logger.Info("Login: existing user id=%d", user.ID)
		return user, nil
	}

	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Login: repository error for phone lookup: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Phone:   phone,
		IsAdmin: phone == s.adminSecret,
	})
	if err != nil {
		// Параллельный первый вход с того же телефона: запись уже появилась
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			existing, getErr := s.userRepo.GetByPhone(ctx, phone)
			if getErr != nil {
				s.logger.Error("Login: failed to re-fetch user after conflict: %v", getErr)
				return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, getErr)
			}
			return existing, nil
		}
		s.logger.Error("Login: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if created.IsAdmin {
		s.logger.Info("Login: created admin user id=%d", created.ID)
	} else {
		s.logger.Info("Login: created user id=%d", created.ID)
	}

	return created, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

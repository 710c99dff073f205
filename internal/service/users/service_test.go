package users

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
)

type mockUserRepo struct {
	byPhone     map[string]*domain.User
	createErr   error
	nextID      int64
	phoneMisses int // первые N вызовов GetByPhone отвечают "не найден"
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byPhone: make(map[string]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.byPhone[user.Phone]; ok {
		return nil, userRepo.ErrUserAlreadyExists
	}

	created := *user
	created.ID = m.nextID
	m.nextID++
	m.byPhone[created.Phone] = &created
	return &created, nil
}

func (m *mockUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	if m.phoneMisses > 0 {
		m.phoneMisses--
		return nil, userRepo.ErrUserNotFound
	}

	user, ok := m.byPhone[phone]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range m.byPhone {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testAdminSecret = "barber123"

func TestService_Login_CreatesUserOnFirstVisit(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, testAdminSecret, nopLogger{})

	user, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)

	assert.Equal(t, "+79990001122", user.Phone)
	assert.False(t, user.IsAdmin)
}

func TestService_Login_ReturnsExistingUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, testAdminSecret, nopLogger{})

	first, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)

	// Повторный вход не создает второго пользователя
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.byPhone, 1)
}

func TestService_Login_AdminSecretGrantsAdmin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, testAdminSecret, nopLogger{})

	user, err := svc.Login(context.Background(), testAdminSecret)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestService_Login_AdminFlagIsSetOnlyAtCreation(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, testAdminSecret, nopLogger{})

	_, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)

	// Смена секрета не влияет на уже созданных пользователей
	svc2 := NewService(repo, "+79990001122", nopLogger{})
	user, err := svc2.Login(context.Background(), "+79990001122")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestService_Login_Validation(t *testing.T) {
	svc := NewService(newMockUserRepo(), testAdminSecret, nopLogger{})

	_, err := svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), strings.Repeat("9", domain.MaxPhoneLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Login_ConcurrentFirstVisit(t *testing.T) {
	// Пользователь появился между GetByPhone и Create: первый поиск
	// промахивается, Create отвечает конфликтом, повторный поиск находит
	repo := newMockUserRepo()
	repo.byPhone["+79990001122"] = &domain.User{ID: 10, Phone: "+79990001122"}
	repo.phoneMisses = 1
	repo.createErr = userRepo.ErrUserAlreadyExists

	svc := NewService(repo, testAdminSecret, nopLogger{})

	user, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
}

func TestService_GetByID(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, testAdminSecret, nopLogger{})

	created, err := svc.Login(context.Background(), "+79990001122")
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Phone, got.Phone)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

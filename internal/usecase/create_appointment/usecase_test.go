package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockAppointmentRepo struct {
	existing  []*domain.Appointment
	getErr    error
	createErr error
	created   *domain.Appointment
}

func (m *mockAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return m.existing, m.getErr
}

func (m *mockAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}

	created := *appointment
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

type mockUserRepo struct {
	user *domain.User
	err  error
}

func (m *mockUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return m.user, m.err
}

type mockNotifier struct {
	calls chan string
	err   error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan string, 1)}
}

func (m *mockNotifier) Notify(_ context.Context, service, date, startTime, phone string) error {
	m.calls <- service + "|" + date + "|" + startTime + "|" + phone
	return m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday возвращает будний день для тестов (понедельник 10 марта 2025)
func monday() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// sunday возвращает воскресенье для тестов (9 марта 2025)
func sunday() time.Time {
	return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *mockAppointmentRepo, userRepo *mockUserRepo, n Notifier) *UseCase {
	return NewUseCase(repo, userRepo, n, passthroughTxManager{}, domain.DefaultSchedulePolicy(), nopLogger{})
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		Service:   "Мужская стрижка",
		Date:      monday(),
		StartTime: "10:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &mockAppointmentRepo{}
	userRepo := &mockUserRepo{user: &domain.User{ID: 1, Phone: "+79990001122"}}
	notifier := newMockNotifier()

	uc := newTestUseCase(repo, userRepo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)

	// Уведомление уходит в фоне после успешного сохранения
	select {
	case call := <-notifier.calls:
		assert.Equal(t, "Мужская стрижка|2025-03-10|10:00|+79990001122", call)
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func TestUseCase_Execute_LegacyTimeIsCanonicalized(t *testing.T) {
	repo := &mockAppointmentRepo{}
	userRepo := &mockUserRepo{user: &domain.User{ID: 1, Phone: "+79990001122"}}

	uc := newTestUseCase(repo, userRepo, newMockNotifier())

	req := validRequest()
	req.StartTime = "9:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
}

func TestUseCase_Execute_SundayClosed(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockUserRepo{user: &domain.User{ID: 1}},
		newMockNotifier(),
	)

	req := validRequest()
	req.Date = sunday()

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSundayClosed)
}

func TestUseCase_Execute_BusinessWindow(t *testing.T) {
	tests := []struct {
		name      string
		startTime types.TimeString
		wantErr   error
	}{
		{name: "before opening", startTime: "08:30", wantErr: ErrOutsideBusinessHours},
		{name: "opening time", startTime: "09:00"},
		{name: "last slot", startTime: "19:30"},
		{name: "closing boundary passes the window rule", startTime: "20:00"},
		{name: "after closing", startTime: "20:01", wantErr: ErrOutsideBusinessHours},
		{name: "late evening", startTime: "22:00", wantErr: ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&mockAppointmentRepo{},
				&mockUserRepo{user: &domain.User{ID: 1}},
				newMockNotifier(),
			)

			req := validRequest()
			req.StartTime = tt.startTime

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &mockAppointmentRepo{
		existing: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusApproved},
		},
	}

	uc := newTestUseCase(repo, &mockUserRepo{user: &domain.User{ID: 1}}, newMockNotifier())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)

	// Сообщение называет дату и время конфликта
	assert.Contains(t, err.Error(), "2025-03-10")
	assert.Contains(t, err.Error(), "10:00")
}

func TestUseCase_Execute_LegacyStoredTimeConflicts(t *testing.T) {
	// Легаси "9:00" в БД конфликтует с каноническим "09:00" запроса
	repo := &mockAppointmentRepo{
		existing: []*domain.Appointment{
			{StartTime: "9:00", Status: domain.StatusPending},
		},
	}

	uc := newTestUseCase(repo, &mockUserRepo{user: &domain.User{ID: 1}}, newMockNotifier())

	req := validRequest()
	req.StartTime = "09:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_TerminalStatusDoesNotConflict(t *testing.T) {
	repo := &mockAppointmentRepo{
		existing: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusRejected},
			{StartTime: "10:00", Status: domain.StatusCancelled},
		},
	}

	uc := newTestUseCase(
		repo,
		&mockUserRepo{user: &domain.User{ID: 1, Phone: "+79990001122"}},
		newMockNotifier(),
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_UserNotFound(t *testing.T) {
	missingUserRepo := &mockUserRepo{err: userRepo.ErrUserNotFound}

	uc := newTestUseCase(&mockAppointmentRepo{}, missingUserRepo, newMockNotifier())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUseCase_Execute_NotifierFailureDoesNotAffectResult(t *testing.T) {
	repo := &mockAppointmentRepo{}
	notifier := newMockNotifier()
	notifier.err = errors.New("smtp: connection refused")

	uc := newTestUseCase(repo, &mockUserRepo{user: &domain.User{ID: 1, Phone: "+7999"}}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	// Сбой отправки не отменяет созданную запись
	select {
	case <-notifier.calls:
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
	}
	assert.NotNil(t, repo.created)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "empty service", mutate: func(r *Request) { r.Service = "" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "ten o'clock" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&mockAppointmentRepo{},
				&mockUserRepo{user: &domain.User{ID: 1}},
				newMockNotifier(),
			)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

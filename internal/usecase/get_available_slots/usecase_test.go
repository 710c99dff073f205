package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return m.appointments, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusPending},
			{StartTime: "9:00", Status: domain.StatusApproved},
		},
	}

	uc := NewUseCase(repo, domain.DefaultSchedulePolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, date, resp.Date)
	assert.Len(t, resp.Slots, 22)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, resp.Taken)
}

func TestUseCase_Execute_RepoErrorDegradesToEmptyTaken(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	repo := &mockAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, domain.DefaultSchedulePolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// Сетка выдается всегда, занятость деградирует до пустого множества
	assert.Len(t, resp.Slots, 22)
	assert.Empty(t, resp.Taken)
}

func TestUseCase_Execute_DateRequired(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, domain.DefaultSchedulePolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

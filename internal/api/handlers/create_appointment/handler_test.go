package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serviceModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockCreateUseCase struct {
	resp *createAppointment.Response
	err  error
}

func (m *mockCreateUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	return m.resp, m.err
}

type mockSlotsUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (m *mockSlotsUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if m.resp != nil {
		m.resp.Date = req.Date
	}
	return m.resp, m.err
}

type mockAppointmentService struct {
	resp *serviceModels.AppointmentListResponse
	err  error
}

func (m *mockAppointmentService) GetUserAppointments(_ context.Context, _ int64) (*serviceModels.AppointmentListResponse, error) {
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	useCase := &mockCreateUseCase{
		resp: &createAppointment.Response{
			ID:        42,
			UserID:    1,
			Service:   "Стрижка",
			Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			Status:    "pending",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	h := NewHandler(useCase, &mockSlotsUseCase{}, &mockAppointmentService{}, nopLogger{})

	rec := doRequest(t, h, `{"userId":1,"service":"Стрижка","date":"2025-03-10","startTime":"10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestHandler_SlotTakenReturnsConflictWithContext(t *testing.T) {
	useCase := &mockCreateUseCase{err: createAppointment.ErrSlotTaken}
	slots := &mockSlotsUseCase{
		resp: &getAvailableSlots.Response{
			Slots: []types.TimeString{"09:00", "09:30"},
			Taken: []types.TimeString{"09:00"},
		},
	}
	service := &mockAppointmentService{
		resp: &serviceModels.AppointmentListResponse{
			Appointments: []serviceModels.AppointmentResponse{{ID: 7, Status: "pending"}},
		},
	}

	h := NewHandler(useCase, slots, service, nopLogger{})

	rec := doRequest(t, h, `{"userId":1,"service":"Стрижка","date":"2025-03-10","startTime":"09:00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	// Отказ несет контекст для повторного показа формы
	var resp RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
	assert.Equal(t, []string{"09:00"}, resp.Taken)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(7), resp.Appointments[0].ID)
}

func TestHandler_SundayClosedReturnsBadRequest(t *testing.T) {
	useCase := &mockCreateUseCase{err: createAppointment.ErrSundayClosed}

	h := NewHandler(useCase, &mockSlotsUseCase{}, &mockAppointmentService{}, nopLogger{})

	rec := doRequest(t, h, `{"userId":1,"service":"Стрижка","date":"2025-03-09","startTime":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ContextFetchFailureKeepsRejectionStatus(t *testing.T) {
	useCase := &mockCreateUseCase{err: createAppointment.ErrOutsideBusinessHours}
	slots := &mockSlotsUseCase{err: getAvailableSlots.ErrInternal}
	service := &mockAppointmentService{err: assert.AnError}

	h := NewHandler(useCase, slots, service, nopLogger{})

	rec := doRequest(t, h, `{"userId":1,"service":"Стрижка","date":"2025-03-10","startTime":"08:00"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Appointments)
}

func TestHandler_InvalidDate(t *testing.T) {
	h := NewHandler(&mockCreateUseCase{}, &mockSlotsUseCase{}, &mockAppointmentService{}, nopLogger{})

	rec := doRequest(t, h, `{"userId":1,"service":"Стрижка","date":"10.03.2025","startTime":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidBody(t *testing.T) {
	h := NewHandler(&mockCreateUseCase{}, &mockSlotsUseCase{}, &mockAppointmentService{}, nopLogger{})

	rec := doRequest(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

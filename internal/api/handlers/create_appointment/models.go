package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	UserID    int64  `json:"userId"`
	Service   string `json:"service"`
	Date      string `json:"date"`      // "2025-03-10"
	StartTime string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RejectionResponse ответ при отклонении записи одним из правил.
// Помимо причины содержит данные для повторного показа формы:
// записи пользователя и сетку слотов на запрошенную дату.
type RejectionResponse struct {
	Error        string                              `json:"error"`
	Appointments []serviceModels.AppointmentResponse `json:"appointments"`
	Slots        []string                            `json:"slots"`
	Taken        []string                            `json:"taken"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    r.UserID,
		Service:   r.Service,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		Service:   resp.Service,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

// NewRejectionResponse собирает ответ об отклонении с контекстом формы
func NewRejectionResponse(
	message string,
	appointments *serviceModels.AppointmentListResponse,
	slots *getAvailableSlots.Response,
) *RejectionResponse {
	resp := &RejectionResponse{
		Error:        message,
		Appointments: make([]serviceModels.AppointmentResponse, 0),
		Slots:        make([]string, 0),
		Taken:        make([]string, 0),
	}

	if appointments != nil {
		resp.Appointments = appointments.Appointments
	}

	if slots != nil {
		for _, slot := range slots.Slots {
			resp.Slots = append(resp.Slots, slot.String())
		}
		for _, t := range slots.Taken {
			resp.Taken = append(resp.Taken, t.String())
		}
	}

	return resp
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи (админ)
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// CancelAppointmentRequest запрос на отмену записи владельцем
type CancelAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Service   string `json:"service"`
	Date      string `json:"date"`      // "2025-03-10"
	StartTime string `json:"startTime"` // "10:00"
	Status    string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// AdminAppointmentResponse запись с телефоном владельца для админ-панели
type AdminAppointmentResponse struct {
	AppointmentResponse
	OwnerPhone string `json:"ownerPhone"`
}

// AdminBoardResponse записи, сгруппированные по статусу, как панели
// админского дашборда
type AdminBoardResponse struct {
	Pending  []AdminAppointmentResponse `json:"pending"`
	Approved []AdminAppointmentResponse `json:"approved"`
	Rejected []AdminAppointmentResponse `json:"rejected"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Service:   a.Service,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if converted := FromDomainAppointment(appointment); converted != nil {
			resp.Appointments = append(resp.Appointments, *converted)
		}
	}

	return resp
}

// FromDomainBoard группирует записи по статусу в панели админского дашборда.
// Отмененные записи в панели не попадают - дашборд показывает только
// pending/approved/rejected, как и раньше.
func FromDomainBoard(appointments []*domain.AppointmentWithOwner) *AdminBoardResponse {
	board := &AdminBoardResponse{
		Pending:  make([]AdminAppointmentResponse, 0),
		Approved: make([]AdminAppointmentResponse, 0),
		Rejected: make([]AdminAppointmentResponse, 0),
	}

	for _, appointment := range appointments {
		converted := AdminAppointmentResponse{
			AppointmentResponse: *FromDomainAppointment(&appointment.Appointment),
			OwnerPhone:          appointment.OwnerPhone,
		}

		switch appointment.Status {
		case domain.StatusPending:
			board.Pending = append(board.Pending, converted)
		case domain.StatusApproved:
			board.Approved = append(board.Approved, converted)
		case domain.StatusRejected:
			board.Rejected = append(board.Rejected, converted)
		}
	}

	return board
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
// по закрытому набору из четырех статусов
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsKnownStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

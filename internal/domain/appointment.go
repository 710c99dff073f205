package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a customer appointment request
type Appointment struct {
	ID        int64
	UserID    int64
	Service   string
	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// (pending and approved appointments block new bookings for the same slot)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsTerminal returns true if the appointment has been rejected or cancelled
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusRejected || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled by its owner
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// AppointmentWithOwner appointment joined with the owner's phone, for the admin board
type AppointmentWithOwner struct {
	Appointment
	OwnerPhone string
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date            *time.Time         // Фильтр по дате (опционально, nil - все даты)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeTerminal bool               // Включать ли rejected/cancelled записи
}

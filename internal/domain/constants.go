package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Default business window
const (
	DefaultOpenTime            types.TimeString = "09:00"
	DefaultCloseTime           types.TimeString = "20:00"
	DefaultSlotDurationMinutes                  = 30
)

// Business validation constants
const (
	MaxServiceNameLength = 100
	MaxPhoneLength       = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие слот.
// Используются при подсчете занятых слотов и проверке конфликтов.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// TerminalStatuses статусы, освобождающие слот
var TerminalStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
}

// KnownStatuses полный закрытый набор статусов.
// Админская смена статуса валидируется по этому списку.
var KnownStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// IsKnownStatus returns true if the status is one of the four known values
func IsKnownStatus(s AppointmentStatus) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`  // "2025-03-10"
	Slots []string `json:"slots"` // полная сетка дня, по порядку
	Taken []string `json:"taken"` // занятые слоты, без дублей
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	taken := make([]string, 0, len(resp.Taken))
	for _, t := range resp.Taken {
		taken = append(taken, t.String())
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
		Taken: taken,
	}
}

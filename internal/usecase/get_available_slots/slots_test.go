package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestGenerateDailySlots_DefaultPolicy(t *testing.T) {
	slots, err := generateDailySlots(domain.DefaultSchedulePolicy())
	require.NoError(t, err)

	// Окно 09:00-20:00 с шагом 30 минут: 22 слота, от 09:00 до 19:30
	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("19:30"), slots[21])

	// Время закрытия слотом не является
	assert.NotContains(t, slots, types.TimeString("20:00"))
}

func TestGenerateDailySlots_SlotMustFitBeforeClose(t *testing.T) {
	policy := domain.SchedulePolicy{
		OpenTime:            "09:00",
		CloseTime:           "10:45",
		SlotDurationMinutes: 30,
	}

	slots, err := generateDailySlots(policy)
	require.NoError(t, err)

	// 10:30 не попадает: его конец (11:00) выходит за закрытие
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots)
}

func TestGenerateDailySlots_EmptyWindow(t *testing.T) {
	policy := domain.SchedulePolicy{
		OpenTime:            "10:00",
		CloseTime:           "10:00",
		SlotDurationMinutes: 30,
	}

	slots, err := generateDailySlots(policy)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestTakenTimes(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "10:00", Status: domain.StatusPending},
		{StartTime: "9:30", Status: domain.StatusApproved}, // легаси формат
		{StartTime: "10:00", Status: domain.StatusApproved},
		{StartTime: "11:00", Status: domain.StatusRejected},
		{StartTime: "12:00", Status: domain.StatusCancelled},
		{StartTime: "junk", Status: domain.StatusPending},
	}

	taken := takenTimes(appointments)

	// Дубли схлопнуты, терминальные статусы и мусор выброшены,
	// легаси время нормализовано, порядок хронологический
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, taken)
}

func TestTakenTimes_Empty(t *testing.T) {
	assert.Empty(t, takenTimes(nil))
}

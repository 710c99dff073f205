package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Date time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date  time.Time          // Дата запроса
	Slots []types.TimeString // Полная сетка слотов дня, по порядку
	Taken []types.TimeString // Занятые слоты (pending/approved), множество без дублей
}

package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя-владельца
	Service   string           // Название услуги (свободный текст)
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	UserID    int64            // ID пользователя
	Service   string           // Название услуги
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	Status    string           // Статус записи (всегда pending при создании)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

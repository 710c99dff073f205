package get_admin_board

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetAdminBoard(ctx context.Context, requestingUserID int64, date *time.Time) (*models.AdminBoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

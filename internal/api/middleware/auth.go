package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

// UserIDHeader заголовок, идентифицирующий пользователя.
// Значение выдается эндпоинтом логина; телефон - неаутентифицированный
// идентификатор, поэтому никакой криптографии здесь нет.
const UserIDHeader = "X-User-ID"

// Auth требует наличия заголовка X-User-ID на защищенных маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(UserIDHeader) == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}

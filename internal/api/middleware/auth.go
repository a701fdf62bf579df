package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
)

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth проверяет наличие X-User-ID и кладет ID пользователя в контекст
// Аутентификация выполняется на gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	// HeaderUserID несёт id аутентифицированного центра, ставится gateway'ем
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "missing X-User-ID header"
	msgInvalidUserID = "invalid X-User-ID header"
)

// Auth извлекает id тенанта из заголовка X-User-ID и кладёт его в
// контекст запроса. Запросы без валидного id отклоняются.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderUserID, raw)
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает id тенанта, положенный Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

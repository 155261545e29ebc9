package auth

import (
	"context"
	"net/http"
)

type userIDKey struct{}

const HeaderUserID = "X-User-ID"

// Middleware кладёт идентификатор пользователя из заголовка в контекст запроса.
// Запросы без заголовка отклоняются до вызова обработчика.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(HeaderUserID)
			if userID == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/taskkeeper/internal/server/handlers"
	"github.com/iudanet/taskkeeper/internal/server/token"
)

// AuthMiddleware создает middleware для проверки access токена.
// Ответ на любой отказ одинаковый: причина (отсутствие заголовка,
// неверная подпись, истекший срок) клиенту не раскрывается.
func AuthMiddleware(logger *slog.Logger, tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				unauthorized(w)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Invalid Authorization header format")
				unauthorized(w)
				return
			}

			userID, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				logger.Warn("Invalid access token")
				unauthorized(w)
				return
			}

			logger.Debug("User authenticated", "user_id", userID)

			// Идентичность живет только в контексте этого запроса
			ctx := handlers.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет единообразный 401 ответ
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"invalid or missing token"}`))
}

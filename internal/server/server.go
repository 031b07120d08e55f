// Package server собирает HTTP сервер: маршруты, middleware и зависимости.
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/taskkeeper/internal/server/config"
	"github.com/iudanet/taskkeeper/internal/server/handlers"
	"github.com/iudanet/taskkeeper/internal/server/middleware"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/server/token"
)

// Storage объединяет интерфейсы хранилища, которые нужны серверу
type Storage interface {
	storage.UserStorage
	storage.CategoryStorage
	storage.TaskStorage
}

// NewRouter собирает все маршруты сервера с middleware.
// Auth-эндпоинты дополнительно ограничены rate limiter'ом от перебора
// учетных данных; health остается открытым для мониторинга.
func NewRouter(logger *slog.Logger, cfg *config.Config, store Storage, tokens *token.Service, version string) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, tokens)
	categoryHandler := handlers.NewCategoryHandler(logger, store)
	taskHandler := handlers.NewTaskHandler(logger, store, store)
	healthHandler := handlers.NewHealthHandler(logger, version)

	requireAuth := middleware.AuthMiddleware(logger, tokens)
	rateLimit := middleware.RateLimitMiddleware(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)

	mux := http.NewServeMux()

	// Публичные эндпоинты
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/register", rateLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", rateLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/v1/auth/refresh", rateLimit(http.HandlerFunc(authHandler.Refresh)))

	// Эндпоинты, требующие аутентификации
	mux.Handle("GET /api/v1/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	mux.Handle("POST /api/v1/categories", requireAuth(http.HandlerFunc(categoryHandler.Create)))
	mux.Handle("GET /api/v1/categories", requireAuth(http.HandlerFunc(categoryHandler.List)))
	mux.Handle("GET /api/v1/categories/{id}", requireAuth(http.HandlerFunc(categoryHandler.Get)))
	mux.Handle("PUT /api/v1/categories/{id}", requireAuth(http.HandlerFunc(categoryHandler.Update)))
	mux.Handle("DELETE /api/v1/categories/{id}", requireAuth(http.HandlerFunc(categoryHandler.Delete)))

	mux.Handle("POST /api/v1/tasks", requireAuth(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /api/v1/tasks", requireAuth(http.HandlerFunc(taskHandler.List)))
	mux.Handle("GET /api/v1/tasks/stats", requireAuth(http.HandlerFunc(taskHandler.Stats)))
	mux.Handle("GET /api/v1/tasks/{id}", requireAuth(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("PUT /api/v1/tasks/{id}", requireAuth(http.HandlerFunc(taskHandler.Update)))
	mux.Handle("DELETE /api/v1/tasks/{id}", requireAuth(http.HandlerFunc(taskHandler.Delete)))

	// Внешние middleware применяются ко всем маршрутам
	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

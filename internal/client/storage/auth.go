// Package storage определяет интерфейсы локального хранилища клиента.
package storage

import (
	"context"
)

// AuthStorage определяет интерфейс хранения сессии на клиенте.
// Токены хранятся как есть в локальной базе пользователя.
type AuthStorage interface {
	// SaveAuth сохраняет данные сессии, перезаписывая предыдущие
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сохраненную сессию.
	// Возвращает ErrAuthNotFound, если сессии нет.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth удаляет сохраненную сессию (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated проверяет, есть ли действующая сессия
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData представляет сохраненную сессию пользователя
type AuthData struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix время истечения access токена
}

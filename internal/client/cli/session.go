package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/taskkeeper/pkg/api"
)

// loadSession возвращает сохраненную сессию или понятную ошибку,
// если пользователь не залогинен
func loadSession(ctx context.Context, store storage.AuthStorage) (*storage.AuthData, error) {
	auth, err := store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'taskkeeper login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return auth, nil
}

// withAccessToken выполняет fn с access токеном сохраненной сессии.
// На 401 пробует один раз обменять refresh токен на новую пару,
// сохраняет ее и повторяет вызов. Просроченный refresh токен
// означает необходимость нового логина.
func withAccessToken(ctx context.Context, apiClient *api.Client, store storage.AuthStorage, fn func(accessToken string) error) error {
	auth, err := loadSession(ctx, store)
	if err != nil {
		return err
	}

	err = fn(auth.AccessToken)
	if !api.IsUnauthorized(err) {
		return err
	}

	tokens, refreshErr := apiClient.Refresh(ctx, auth.RefreshToken)
	if refreshErr != nil {
		if api.IsUnauthorized(refreshErr) {
			return fmt.Errorf("session expired. Please run 'taskkeeper login' again")
		}
		return refreshErr
	}

	if err := saveTokens(ctx, store, auth, tokens); err != nil {
		return err
	}

	return fn(tokens.AccessToken)
}

// saveTokens записывает новую пару токенов поверх текущей сессии
func saveTokens(ctx context.Context, store storage.AuthStorage, auth *storage.AuthData, tokens *pkgapi.TokenResponse) error {
	auth.AccessToken = tokens.AccessToken
	auth.RefreshToken = tokens.RefreshToken
	auth.ExpiresAt = time.Now().Unix() + tokens.ExpiresIn

	if err := store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}
	return nil
}

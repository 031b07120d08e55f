package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/taskkeeper/pkg/api"
)

// RunLogin выполняет интерактивный логин и сохраняет сессию локально
func RunLogin(ctx context.Context, apiClient *api.Client, store storage.AuthStorage) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	tokens, err := apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Профиль нужен, чтобы сохранить user_id вместе с сессией
	user, err := apiClient.Me(ctx, tokens.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to get user profile: %w", err)
	}

	authData := &storage.AuthData{
		Email:        user.Email,
		UserID:       user.ID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Unix() + tokens.ExpiresIn,
	}

	if err := store.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Access token expires in: %d seconds\n", tokens.ExpiresIn)

	return nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// RunStatus показывает состояние локальной сессии
func RunStatus(ctx context.Context, store storage.AuthStorage) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	isAuth, err := store.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'taskkeeper login' to authenticate.")
		return nil
	}

	auth, err := store.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	expiresAt := time.Unix(auth.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	fmt.Println("Status: Authenticated")
	fmt.Printf("Email: %s\n", auth.Email)
	fmt.Printf("Access token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining > 0 {
		fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// RunLogout удаляет локальную сессию.
// Сервер сессий не хранит, поэтому logout полностью локальный.
func RunLogout(ctx context.Context, store storage.AuthStorage) error {
	fmt.Println("=== Logout ===")

	if err := store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			fmt.Println("No active session.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("✓ Logout successful!")
	fmt.Println("Your local session has been deleted.")

	return nil
}

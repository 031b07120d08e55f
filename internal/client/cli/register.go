package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/api"
	pkgapi "github.com/iudanet/taskkeeper/pkg/api"
)

// RunRegister выполняет интерактивную регистрацию нового пользователя
func RunRegister(ctx context.Context, apiClient *api.Client) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	name, err := readInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	password, err := readPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering user...")

	result, err := apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("User ID: %s\n", result.User.ID)
	fmt.Printf("Email:   %s\n", result.User.Email)
	fmt.Println()
	fmt.Println("Please run 'taskkeeper login' to start using the service.")

	return nil
}

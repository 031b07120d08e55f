package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/taskkeeper/pkg/api"
)

// RunCategory выполняет подкоманды работы с категориями
func RunCategory(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: taskkeeper category <add|list|delete>")
	}

	switch args[0] {
	case "add":
		return runCategoryAdd(ctx, args[1:], apiClient, store)
	case "list":
		return runCategoryList(ctx, apiClient, store)
	case "delete":
		return runCategoryDelete(ctx, args[1:], apiClient, store)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add, list, or delete", args[0])
	}
}

func runCategoryAdd(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category name. Usage: taskkeeper category add <name> [color]")
	}

	req := pkgapi.CategoryRequest{Name: args[0]}
	if len(args) > 1 {
		req.Color = args[1]
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		category, err := apiClient.CreateCategory(ctx, accessToken, req)
		if err != nil {
			return err
		}

		fmt.Println("✓ Category created!")
		fmt.Printf("ID:    %s\n", category.ID)
		fmt.Printf("Name:  %s\n", category.Name)
		fmt.Printf("Color: %s\n", category.Color)
		return nil
	})
}

func runCategoryList(ctx context.Context, apiClient *api.Client, store storage.AuthStorage) error {
	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		resp, err := apiClient.ListCategories(ctx, accessToken)
		if err != nil {
			return err
		}

		if resp.Total == 0 {
			fmt.Println("No categories found.")
			fmt.Println()
			fmt.Println("Use 'taskkeeper category add <name>' to create one.")
			return nil
		}

		fmt.Printf("Found %d categor(ies):\n", resp.Total)
		fmt.Println()
		for i, category := range resp.Categories {
			fmt.Printf("%d. %s\n", i+1, category.Name)
			fmt.Printf("   ID:    %s\n", category.ID)
			fmt.Printf("   Color: %s\n", category.Color)
			fmt.Println()
		}
		return nil
	})
}

func runCategoryDelete(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category id. Usage: taskkeeper category delete <id>")
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		if err := apiClient.DeleteCategory(ctx, accessToken, args[0]); err != nil {
			return err
		}

		fmt.Println("✓ Category deleted!")
		return nil
	})
}

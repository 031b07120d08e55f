package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// RunStats показывает агрегированную статистику по задачам
func RunStats(ctx context.Context, apiClient *api.Client, store storage.AuthStorage) error {
	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		stats, err := apiClient.GetStats(ctx, accessToken)
		if err != nil {
			return err
		}

		fmt.Println("=== Task Statistics ===")
		fmt.Println()
		fmt.Printf("Total:       %d\n", stats.TotalTasks)
		fmt.Printf("Pending:     %d\n", stats.PendingTasks)
		fmt.Printf("In progress: %d\n", stats.InProgressTasks)
		fmt.Printf("Completed:   %d\n", stats.CompletedTasks)
		fmt.Printf("Overdue:     %d\n", stats.OverdueTasks)
		return nil
	})
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/taskkeeper/pkg/api"
)

// RunTask выполняет подкоманды работы с задачами
func RunTask(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: taskkeeper task <add|list|get|done|delete>")
	}

	switch args[0] {
	case "add":
		return runTaskAdd(ctx, args[1:], apiClient, store)
	case "list":
		return runTaskList(ctx, args[1:], apiClient, store)
	case "get":
		return runTaskGet(ctx, args[1:], apiClient, store)
	case "done":
		return runTaskDone(ctx, args[1:], apiClient, store)
	case "delete":
		return runTaskDelete(ctx, args[1:], apiClient, store)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add, list, get, done, or delete", args[0])
	}
}

func runTaskAdd(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	fs := flag.NewFlagSet("task add", flag.ContinueOnError)
	description := fs.String("description", "", "task description")
	categoryID := fs.String("category", "", "category id")
	dueDate := fs.String("due", "", "due date in RFC3339 format, e.g. 2026-09-15T18:00:00Z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("missing task title. Usage: taskkeeper task add <title> [--description TEXT] [--category ID] [--due RFC3339]")
	}

	req := pkgapi.TaskRequest{
		Title:       fs.Arg(0),
		Description: *description,
	}
	if *categoryID != "" {
		req.CategoryID = categoryID
	}
	if *dueDate != "" {
		due, err := time.Parse(time.RFC3339, *dueDate)
		if err != nil {
			return fmt.Errorf("invalid due date, expected RFC3339: %w", err)
		}
		req.DueDate = &due
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		task, err := apiClient.CreateTask(ctx, accessToken, req)
		if err != nil {
			return err
		}

		fmt.Println("✓ Task created!")
		printTask(task)
		return nil
	})
}

func runTaskList(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	fs := flag.NewFlagSet("task list", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status: PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
	categoryID := fs.String("category", "", "filter by category id")
	search := fs.String("search", "", "substring search in title and description")
	sortBy := fs.String("sort-by", "", "sort field: created_at, due_date, title, status")
	sortDir := fs.String("sort-dir", "", "sort direction: asc or desc")
	page := fs.Int("page", 0, "page number, starting from 1")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := url.Values{}
	if *status != "" {
		query.Set("status", *status)
	}
	if *categoryID != "" {
		query.Set("category_id", *categoryID)
	}
	if *search != "" {
		query.Set("search", *search)
	}
	if *sortBy != "" {
		query.Set("sort_by", *sortBy)
	}
	if *sortDir != "" {
		query.Set("sort_dir", *sortDir)
	}
	if *page > 0 {
		query.Set("page", strconv.Itoa(*page))
	}
	if *limit > 0 {
		query.Set("limit", strconv.Itoa(*limit))
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		resp, err := apiClient.ListTasks(ctx, accessToken, query)
		if err != nil {
			return err
		}

		if resp.Total == 0 {
			fmt.Println("No tasks found.")
			fmt.Println()
			fmt.Println("Use 'taskkeeper task add <title>' to create one.")
			return nil
		}

		fmt.Printf("Page %d of %d (%d task(s) total):\n", resp.Page, resp.Pages, resp.Total)
		fmt.Println()
		for i, task := range resp.Tasks {
			fmt.Printf("%d. [%s] %s\n", (resp.Page-1)*resp.Limit+i+1, task.Status, task.Title)
			fmt.Printf("   ID: %s\n", task.ID)
			if task.DueDate != nil {
				fmt.Printf("   Due: %s\n", task.DueDate.Format(time.RFC3339))
			}
			fmt.Println()
		}
		return nil
	})
}

func runTaskGet(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: taskkeeper task get <id>")
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		task, err := apiClient.GetTask(ctx, accessToken, args[0])
		if err != nil {
			return err
		}

		printTask(task)
		return nil
	})
}

func runTaskDone(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: taskkeeper task done <id>")
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		task, err := apiClient.GetTask(ctx, accessToken, args[0])
		if err != nil {
			return err
		}

		updated, err := apiClient.UpdateTask(ctx, accessToken, task.ID, pkgapi.TaskRequest{
			Title:       task.Title,
			Description: task.Description,
			CategoryID:  task.CategoryID,
			DueDate:     task.DueDate,
			Status:      "COMPLETED",
		})
		if err != nil {
			return err
		}

		fmt.Println("✓ Task completed!")
		printTask(updated)
		return nil
	})
}

func runTaskDelete(ctx context.Context, args []string, apiClient *api.Client, store storage.AuthStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: taskkeeper task delete <id>")
	}

	return withAccessToken(ctx, apiClient, store, func(accessToken string) error {
		if err := apiClient.DeleteTask(ctx, accessToken, args[0]); err != nil {
			return err
		}

		fmt.Println("✓ Task deleted!")
		return nil
	})
}

func printTask(task *pkgapi.Task) {
	fmt.Printf("ID:     %s\n", task.ID)
	fmt.Printf("Title:  %s\n", task.Title)
	fmt.Printf("Status: %s\n", task.Status)
	if task.Description != "" {
		fmt.Printf("Description: %s\n", task.Description)
	}
	if task.CategoryID != nil {
		fmt.Printf("Category: %s\n", *task.CategoryID)
	}
	if task.DueDate != nil {
		fmt.Printf("Due: %s\n", task.DueDate.Format(time.RFC3339))
	}
	fmt.Printf("Created: %s\n", task.CreatedAt.Format(time.RFC3339))
}

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, email string) string {
	t.Helper()

	userID := uuid.New().String()
	now := time.Now()

	err := s.CreateUser(ctx, &models.User{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$12$fakehashfortesting",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	return userID
}

func createTestCategory(t *testing.T, ctx context.Context, s *Storage, userID, name string) string {
	t.Helper()

	categoryID := uuid.New().String()
	now := time.Now()

	err := s.CreateCategory(ctx, &models.Category{
		ID:        categoryID,
		UserID:    userID,
		Name:      name,
		Color:     "#336699",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	return categoryID
}

func createTestTask(t *testing.T, ctx context.Context, s *Storage, task *models.Task) string {
	t.Helper()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	require.NoError(t, s.CreateTask(ctx, task))

	return task.ID
}

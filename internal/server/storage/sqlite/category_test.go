package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

func TestCategoryStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "owner@example.com")
	categoryID := createTestCategory(t, ctx, s, userID, "Work")

	category, err := s.GetCategory(ctx, userID, categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Work", category.Name)
	assert.Equal(t, "#336699", category.Color)
	assert.Equal(t, userID, category.UserID)
}

func TestCategoryStorage_NameUniquePerOwner(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userA := createTestUser(t, ctx, s, "a@example.com")
	userB := createTestUser(t, ctx, s, "b@example.com")

	createTestCategory(t, ctx, s, userA, "Work")

	// Повторное имя у того же владельца — конфликт
	now := time.Now()
	err := s.CreateCategory(ctx, &models.Category{
		ID:        uuid.New().String(),
		UserID:    userA,
		Name:      "Work",
		Color:     "#000000",
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.ErrorIs(t, err, storage.ErrCategoryNameTaken)

	// То же имя у другого владельца — допустимо
	err = s.CreateCategory(ctx, &models.Category{
		ID:        uuid.New().String(),
		UserID:    userB,
		Name:      "Work",
		Color:     "#000000",
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.NoError(t, err)
}

func TestCategoryStorage_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userA := createTestUser(t, ctx, s, "a@example.com")
	userB := createTestUser(t, ctx, s, "b@example.com")

	categoryID := createTestCategory(t, ctx, s, userA, "Private")

	// Чужая категория неотличима от отсутствующей
	_, err := s.GetCategory(ctx, userB, categoryID)
	assert.ErrorIs(t, err, storage.ErrCategoryNotFound)

	err = s.DeleteCategory(ctx, userB, categoryID)
	assert.ErrorIs(t, err, storage.ErrCategoryNotFound)

	// Для владельца категория на месте
	_, err = s.GetCategory(ctx, userA, categoryID)
	assert.NoError(t, err)
}

func TestCategoryStorage_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "owner@example.com")
	createTestCategory(t, ctx, s, userID, "Personal")
	createTestCategory(t, ctx, s, userID, "Archive")
	createTestCategory(t, ctx, s, userID, "Work")

	categories, err := s.ListCategories(ctx, userID)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Archive", categories[0].Name)
	assert.Equal(t, "Personal", categories[1].Name)
	assert.Equal(t, "Work", categories[2].Name)
}

func TestCategoryStorage_Update(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "owner@example.com")
	categoryID := createTestCategory(t, ctx, s, userID, "Work")
	createTestCategory(t, ctx, s, userID, "Personal")

	// Переименование в занятое имя — конфликт
	err := s.UpdateCategory(ctx, &models.Category{
		ID:        categoryID,
		UserID:    userID,
		Name:      "Personal",
		Color:     "#ffffff",
		UpdatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrCategoryNameTaken)

	// Обычное переименование проходит
	err = s.UpdateCategory(ctx, &models.Category{
		ID:        categoryID,
		UserID:    userID,
		Name:      "Office",
		Color:     "#ffffff",
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	category, err := s.GetCategory(ctx, userID, categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Office", category.Name)
	assert.Equal(t, "#ffffff", category.Color)
}

func TestCategoryStorage_DeleteBlockedWhileInUse(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "owner@example.com")
	categoryID := createTestCategory(t, ctx, s, userID, "Work")

	taskID := createTestTask(t, ctx, s, &models.Task{
		UserID:     userID,
		CategoryID: &categoryID,
		Title:      "Report",
	})

	// Пока есть задачи, удаление отклоняется
	err := s.DeleteCategory(ctx, userID, categoryID)
	assert.ErrorIs(t, err, storage.ErrCategoryInUse)

	_, err = s.GetCategory(ctx, userID, categoryID)
	assert.NoError(t, err)

	// После удаления задачи категория удаляется
	require.NoError(t, s.DeleteTask(ctx, userID, taskID))
	require.NoError(t, s.DeleteCategory(ctx, userID, categoryID))

	_, err = s.GetCategory(ctx, userID, categoryID)
	assert.ErrorIs(t, err, storage.ErrCategoryNotFound)
}

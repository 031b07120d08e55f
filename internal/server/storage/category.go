package storage

import (
	"context"

	"github.com/iudanet/taskkeeper/internal/models"
)

// CategoryStorage defines interface for category persistence.
// Every lookup and mutation is scoped by owner: a category belonging
// to another user is indistinguishable from a missing one.
type CategoryStorage interface {
	// CreateCategory creates a new category
	// Returns ErrCategoryNameTaken if the owner already has a category
	// with the same name
	CreateCategory(ctx context.Context, category *models.Category) error

	// GetCategory retrieves category by {id, owner}
	// Returns ErrCategoryNotFound if absent or owned by another user
	GetCategory(ctx context.Context, userID, categoryID string) (*models.Category, error)

	// ListCategories retrieves all categories of the owner, sorted by name
	ListCategories(ctx context.Context, userID string) ([]*models.Category, error)

	// UpdateCategory updates name/color of a category scoped by owner
	// Returns ErrCategoryNotFound if absent or owned by another user,
	// ErrCategoryNameTaken on a per-owner name conflict
	UpdateCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory deletes a category scoped by owner
	// Returns ErrCategoryNotFound if absent or owned by another user,
	// ErrCategoryInUse while the category still has tasks
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

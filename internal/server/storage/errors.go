package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with this email already exists
	ErrEmailTaken = errors.New("email already taken")

	// ErrCategoryNotFound indicates that category doesn't exist
	// or belongs to a different user (indistinguishable by design)
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken indicates that the owner already has
	// a category with this name
	ErrCategoryNameTaken = errors.New("category name already taken")

	// ErrCategoryInUse indicates that category still has associated tasks
	// and cannot be deleted
	ErrCategoryInUse = errors.New("category has associated tasks")

	// ErrTaskNotFound indicates that task doesn't exist
	// or belongs to a different user (indistinguishable by design)
	ErrTaskNotFound = errors.New("task not found")
)

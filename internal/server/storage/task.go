package storage

import (
	"context"

	"github.com/iudanet/taskkeeper/internal/models"
)

// SortField перечисляет поля с детерминированным порядком сортировки.
// Произвольные имена полей от клиента сюда не попадают: фильтр
// конструируется только из этого набора.
type SortField string

// Допустимые поля сортировки
const (
	SortByCreatedAt SortField = "created_at"
	SortByDueDate   SortField = "due_date"
	SortByTitle     SortField = "title"
	SortByStatus    SortField = "status"
)

// Valid проверяет, что поле сортировки входит в допустимый набор
func (f SortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByDueDate, SortByTitle, SortByStatus:
		return true
	}
	return false
}

// TaskFilter описывает типизированный фильтр списка задач.
// Владелец в фильтр не входит: он передается отдельным аргументом
// и применяется хранилищем безусловно.
type TaskFilter struct {
	Status     *models.TaskStatus // фильтр по статусу, nil — все статусы
	CategoryID *string            // фильтр по категории, nil — все категории
	Search     string             // подстрока в title или description, без учета регистра
	SortBy     SortField          // поле сортировки
	SortDesc   bool               // направление: true — по убыванию
	Page       int                // номер страницы, с 1
	Limit      int                // размер страницы
}

// Offset возвращает смещение для текущей страницы
func (f TaskFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TaskStorage defines interface for task persistence.
// Every lookup and mutation is scoped by owner: a task belonging
// to another user is indistinguishable from a missing one.
type TaskStorage interface {
	// CreateTask creates a new task
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves task by {id, owner}
	// Returns ErrTaskNotFound if absent or owned by another user
	GetTask(ctx context.Context, userID, taskID string) (*models.Task, error)

	// ListTasks retrieves one page of the owner's tasks matching the filter
	// plus the total matching count computed independently of the page window
	ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]*models.Task, int, error)

	// UpdateTask updates a task scoped by owner
	// Returns ErrTaskNotFound if absent or owned by another user
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask deletes a task scoped by owner
	// Returns ErrTaskNotFound if absent or owned by another user
	DeleteTask(ctx context.Context, userID, taskID string) error

	// CountTasksByCategory returns the number of the owner's tasks
	// referencing the category
	CountTasksByCategory(ctx context.Context, userID, categoryID string) (int, error)

	// GetTaskStats computes per-owner aggregate counts.
	// Each count runs as an independent query; the result is a
	// point-in-time reporting view, not a consistent snapshot.
	GetTaskStats(ctx context.Context, userID string) (*models.TaskStats, error)
}

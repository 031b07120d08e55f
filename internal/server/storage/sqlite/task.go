package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

// sortColumns отображает допустимые поля сортировки в имена колонок.
// Имена колонок в SQL попадают только из этой таблицы, значения от
// клиента в текст запроса не интерполируются.
var sortColumns = map[storage.SortField]string{
	storage.SortByCreatedAt: "created_at",
	storage.SortByDueDate:   "due_date",
	storage.SortByTitle:     "title",
	storage.SortByStatus:    "status",
}

// CreateTask creates a new task
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, category_id, title, description, due_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.CategoryID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// GetTask retrieves task by {id, owner}.
// Чужая задача неотличима от отсутствующей.
func (s *Storage) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	query := `
		SELECT id, user_id, category_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE id = ? AND user_id = ?
	`

	row := s.db.QueryRowContext(ctx, query, taskID, userID)

	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks retrieves one page of the owner's tasks matching the filter.
// Общее количество совпадений считается отдельным COUNT-запросом с теми же
// предикатами, независимо от окна страницы.
func (s *Storage) ListTasks(ctx context.Context, userID string, filter storage.TaskFilter) ([]*models.Task, int, error) {
	where, args := buildTaskPredicates(userID, filter)

	// Общее количество под фильтром
	countQuery := `SELECT COUNT(*) FROM tasks WHERE ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		// Фильтр валидируется до обращения к хранилищу,
		// неизвестное поле здесь — ошибка программирования
		return nil, 0, fmt.Errorf("unknown sort field: %q", filter.SortBy)
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	listQuery := fmt.Sprintf(`
		SELECT id, user_id, category_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE %s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, column, direction)

	listArgs := append(args, filter.Limit, filter.Offset())

	rows, err := s.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []*models.Task

	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, total, nil
}

// buildTaskPredicates собирает WHERE-предикаты для фильтра.
// Предикат владельца обязателен и стоит первым независимо от остальных условий.
func buildTaskPredicates(userID string, filter storage.TaskFilter) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{userID}

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	if filter.Search != "" {
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}

// UpdateTask updates a task scoped by owner
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET category_id = ?, title = ?, description = ?, due_date = ?, status = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		task.CategoryID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// DeleteTask deletes a task scoped by owner
func (s *Storage) DeleteTask(ctx context.Context, userID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// CountTasksByCategory returns the number of the owner's tasks referencing the category
func (s *Storage) CountTasksByCategory(ctx context.Context, userID, categoryID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = ? AND category_id = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks by category: %w", err)
	}

	return count, nil
}

// GetTaskStats computes per-owner aggregate counts.
// Пять независимых запросов: итоговые значения — снимок на момент каждого
// запроса, строгая согласованность между счетчиками не требуется.
func (s *Storage) GetTaskStats(ctx context.Context, userID string) (*models.TaskStats, error) {
	stats := &models.TaskStats{}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE user_id = ?`, userID,
	).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count total tasks: %w", err)
	}

	statusCounts := []struct {
		status models.TaskStatus
		dest   *int
	}{
		{models.TaskStatusPending, &stats.Pending},
		{models.TaskStatusInProgress, &stats.InProgress},
		{models.TaskStatusCompleted, &stats.Completed},
	}

	for _, sc := range statusCounts {
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM tasks WHERE user_id = ? AND status = ?`,
			userID, string(sc.status),
		).Scan(sc.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s tasks: %w", sc.status, err)
		}
	}

	// Просроченные: срок строго в прошлом, задача все еще активна
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks
		 WHERE user_id = ? AND due_date IS NOT NULL AND due_date < ? AND status NOT IN (?, ?)`,
		userID, time.Now(),
		string(models.TaskStatusCompleted), string(models.TaskStatusCancelled),
	).Scan(&stats.Overdue); err != nil {
		return nil, fmt.Errorf("failed to count overdue tasks: %w", err)
	}

	return stats, nil
}

// scanTask читает одну строку tasks, обрабатывая NULL-колонки
func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	task := &models.Task{}

	var categoryID sql.NullString
	var dueDate sql.NullTime
	var status string

	err := scan(
		&task.ID,
		&task.UserID,
		&categoryID,
		&task.Title,
		&task.Description,
		&dueDate,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		task.CategoryID = &categoryID.String
	}
	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	task.Status = models.TaskStatus(status)

	return task, nil
}

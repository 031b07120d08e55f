package models

import "time"

// TaskStatus описывает статус задачи
type TaskStatus string

// Допустимые статусы задачи
const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// Valid проверяет, что статус входит в фиксированный набор
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task представляет задачу пользователя.
// Задача может ссылаться на категорию того же владельца.
type Task struct {
	ID          string     `json:"id"`                    // UUID задачи
	UserID      string     `json:"user_id"`               // ID владельца
	CategoryID  *string    `json:"category_id,omitempty"` // опциональная категория того же владельца
	Title       string     `json:"title"`                 // заголовок
	Description string     `json:"description,omitempty"` // опциональное описание
	DueDate     *time.Time `json:"due_date,omitempty"`    // опциональный срок выполнения
	Status      TaskStatus `json:"status"`                // статус из фиксированного набора
	CreatedAt   time.Time  `json:"created_at"`            // время создания
	UpdatedAt   time.Time  `json:"updated_at"`            // время последнего обновления
}

// Overdue возвращает true, если срок задачи истек и задача все еще активна
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == TaskStatusCompleted || t.Status == TaskStatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}

// TaskStats содержит агрегированную статистику по задачам пользователя.
// Каждый счетчик вычисляется независимым запросом, поэтому значения
// могут незначительно расходиться между собой под нагрузкой.
type TaskStats struct {
	Total      int `json:"total_tasks"`
	Pending    int `json:"pending_tasks"`
	InProgress int `json:"in_progress_tasks"`
	Completed  int `json:"completed_tasks"`
	Overdue    int `json:"overdue_tasks"`
}

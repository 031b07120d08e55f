package api

import "time"

// TaskRequest представляет запрос на создание или обновление задачи
type TaskRequest struct {
	Title       string     `json:"title"`                 // заголовок, обязателен
	Description string     `json:"description,omitempty"` // опциональное описание
	CategoryID  *string    `json:"category_id,omitempty"` // опциональная категория того же владельца
	DueDate     *time.Time `json:"due_date,omitempty"`    // опциональный срок выполнения
	Status      string     `json:"status,omitempty"`      // статус, по умолчанию PENDING
}

// Task представляет задачу в ответах API
type Task struct {
	ID          string     `json:"id"`                    // UUID задачи
	CategoryID  *string    `json:"category_id,omitempty"` // категория, если назначена
	Title       string     `json:"title"`                 // заголовок
	Description string     `json:"description,omitempty"` // описание
	DueDate     *time.Time `json:"due_date,omitempty"`    // срок выполнения
	Status      string     `json:"status"`                // статус
	CreatedAt   time.Time  `json:"created_at"`            // время создания
	UpdatedAt   time.Time  `json:"updated_at"`            // время последнего обновления
}

// TaskListResponse представляет страницу задач с данными пагинации
type TaskListResponse struct {
	Tasks []Task `json:"tasks"` // задачи текущей страницы
	Total int    `json:"total"` // общее количество задач под фильтром
	Page  int    `json:"page"`  // номер текущей страницы, с 1
	Limit int    `json:"limit"` // размер страницы
	Pages int    `json:"pages"` // общее количество страниц
}

// StatsResponse представляет агрегированную статистику по задачам
type StatsResponse struct {
	TotalTasks      int `json:"total_tasks"`       // всего задач
	PendingTasks    int `json:"pending_tasks"`     // в статусе PENDING
	InProgressTasks int `json:"in_progress_tasks"` // в статусе IN_PROGRESS
	CompletedTasks  int `json:"completed_tasks"`   // в статусе COMPLETED
	OverdueTasks    int `json:"overdue_tasks"`     // просроченные активные задачи
}

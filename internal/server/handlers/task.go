package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/validation"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// TaskHandler обрабатывает CRUD, список и статистику задач.
// Все операции выполняются от имени аутентифицированного владельца.
type TaskHandler struct {
	logger     *slog.Logger
	tasks      storage.TaskStorage
	categories storage.CategoryStorage
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(logger *slog.Logger, tasks storage.TaskStorage, categories storage.CategoryStorage) *TaskHandler {
	return &TaskHandler{
		logger:     logger,
		tasks:      tasks,
		categories: categories,
	}
}

// Create обрабатывает POST /api/v1/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	errs := validation.ValidateTask(req.Title, req.Description, req.Status)

	// Категория должна существовать и принадлежать тому же владельцу
	if req.CategoryID != nil && errs.Empty() {
		if err := h.checkCategoryOwned(r, userID, *req.CategoryID, &errs); err != nil {
			sendStorageError(h.logger, w, err)
			return
		}
	}

	if !errs.Empty() {
		sendValidationError(h.logger, w, errs)
		return
	}

	status := models.TaskStatusPending
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.tasks.CreateTask(ctx, task); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "task created",
		slog.String("user_id", userID),
		slog.String("task_id", task.ID))

	sendJSON(h.logger, w, toTaskResponse(task), http.StatusCreated)
}

// List обрабатывает GET /api/v1/tasks
// Фильтрация, сортировка и пагинация задаются query-параметрами
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter, errs := parseTaskFilter(r.URL.Query())
	if !errs.Empty() {
		sendValidationError(h.logger, w, errs)
		return
	}

	tasks, total, err := h.tasks.ListTasks(ctx, userID, filter)
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	resp := api.TaskListResponse{
		Tasks: make([]api.Task, 0, len(tasks)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: (total + filter.Limit - 1) / filter.Limit,
	}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(task))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	task, err := h.tasks.GetTask(ctx, userID, r.PathValue("id"))
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, toTaskResponse(task), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	errs := validation.ValidateTask(req.Title, req.Description, req.Status)

	if req.CategoryID != nil && errs.Empty() {
		if err := h.checkCategoryOwned(r, userID, *req.CategoryID, &errs); err != nil {
			sendStorageError(h.logger, w, err)
			return
		}
	}

	if !errs.Empty() {
		sendValidationError(h.logger, w, errs)
		return
	}

	task, err := h.tasks.GetTask(ctx, userID, r.PathValue("id"))
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	task.CategoryID = req.CategoryID
	task.DueDate = req.DueDate
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	task.UpdatedAt = time.Now()

	if err := h.tasks.UpdateTask(ctx, task); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "task updated",
		slog.String("user_id", userID),
		slog.String("task_id", task.ID))

	sendJSON(h.logger, w, toTaskResponse(task), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID := r.PathValue("id")

	if err := h.tasks.DeleteTask(ctx, userID, taskID); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID),
		slog.String("task_id", taskID))

	w.WriteHeader(http.StatusNoContent)
}

// Stats обрабатывает GET /api/v1/tasks/stats
// Отчетный снимок: счетчики вычисляются независимыми запросами
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.tasks.GetTaskStats(ctx, userID)
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	resp := api.StatsResponse{
		TotalTasks:      stats.Total,
		PendingTasks:    stats.Pending,
		InProgressTasks: stats.InProgress,
		CompletedTasks:  stats.Completed,
		OverdueTasks:    stats.Overdue,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// checkCategoryOwned проверяет, что категория существует и принадлежит
// владельцу. Чужая или отсутствующая категория — ошибка валидации поля
// category_id, а не 404: ресурс задачи здесь еще не создан.
func (h *TaskHandler) checkCategoryOwned(r *http.Request, userID, categoryID string, errs *validation.Errors) error {
	_, err := h.categories.GetCategory(r.Context(), userID, categoryID)
	if err != nil {
		if errors.Is(err, storage.ErrCategoryNotFound) {
			errs.Add("category_id", "category does not exist")
			return nil
		}
		return err
	}
	return nil
}

// toTaskResponse конвертирует модель в API формат
func toTaskResponse(task *models.Task) api.Task {
	return api.Task{
		ID:          task.ID,
		CategoryID:  task.CategoryID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

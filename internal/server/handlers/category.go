package handlers

import (
	"encoding/json"
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

// DefaultCategoryColor цвет категории, если клиент не указал свой
const DefaultCategoryColor = "#808080"

// CategoryHandler обрабатывает CRUD запросы категорий.
// Все операции выполняются от имени аутентифицированного владельца:
// идентификатор берется из контекста запроса, установленного middleware.
type CategoryHandler struct {
	logger     *slog.Logger
	categories storage.CategoryStorage
}

// NewCategoryHandler создает новый handler для категорий
func NewCategoryHandler(logger *slog.Logger, categories storage.CategoryStorage) *CategoryHandler {
	return &CategoryHandler{
		logger:     logger,
		categories: categories,
	}
}

// Create обрабатывает POST /api/v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if errs := validation.ValidateCategory(req.Name, req.Color); !errs.Empty() {
		sendValidationError(h.logger, w, errs)
		return
	}

	if req.Color == "" {
		req.Color = DefaultCategoryColor
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.categories.CreateCategory(ctx, category); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "category created",
		slog.String("user_id", userID),
		slog.String("category_id", category.ID))

	sendJSON(h.logger, w, toCategoryResponse(category), http.StatusCreated)
}

// List обрабатывает GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	categories, err := h.categories.ListCategories(ctx, userID)
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	resp := api.CategoryListResponse{
		Categories: make([]api.Category, 0, len(categories)),
		Total:      len(categories),
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(category))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	category, err := h.categories.GetCategory(ctx, userID, r.PathValue("id"))
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, toCategoryResponse(category), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if errs := validation.ValidateCategory(req.Name, req.Color); !errs.Empty() {
		sendValidationError(h.logger, w, errs)
		return
	}

	// Текущее состояние нужно, чтобы сохранить цвет при его отсутствии в запросе
	category, err := h.categories.GetCategory(ctx, userID, r.PathValue("id"))
	if err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	category.Name = req.Name
	if req.Color != "" {
		category.Color = req.Color
	}
	category.UpdatedAt = time.Now()

	if err := h.categories.UpdateCategory(ctx, category); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "category updated",
		slog.String("user_id", userID),
		slog.String("category_id", category.ID))

	sendJSON(h.logger, w, toCategoryResponse(category), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/categories/{id}
// Отклоняется, пока у категории есть связанные задачи
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	categoryID := r.PathValue("id")

	if err := h.categories.DeleteCategory(ctx, userID, categoryID); err != nil {
		sendStorageError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID),
		slog.String("category_id", categoryID))

	w.WriteHeader(http.StatusNoContent)
}

// toCategoryResponse конвертирует модель в API формат
func toCategoryResponse(category *models.Category) api.Category {
	return api.Category{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

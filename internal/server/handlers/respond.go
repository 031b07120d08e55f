package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/validation"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendValidationError отправляет 400 со списком нарушений по полям
func sendValidationError(logger *slog.Logger, w http.ResponseWriter, errs validation.Errors) {
	fields := make([]api.FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, api.FieldError{Field: fe.Field, Message: fe.Message})
	}

	resp := api.ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: "validation failed",
		Fields:  fields,
	}
	sendJSON(logger, w, resp, http.StatusBadRequest)
}

// sendStorageError единообразно отображает ошибки хранилища в HTTP статусы.
// Отсутствующий и чужой ресурс дают один и тот же 404: различие не
// раскрывается, чтобы не выдавать существование чужих ресурсов.
func sendStorageError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrCategoryNotFound),
		errors.Is(err, storage.ErrTaskNotFound):
		sendError(logger, w, "not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrEmailTaken):
		sendError(logger, w, "email already taken", http.StatusBadRequest)
	case errors.Is(err, storage.ErrCategoryNameTaken):
		sendError(logger, w, "category name already taken", http.StatusBadRequest)
	case errors.Is(err, storage.ErrCategoryInUse):
		sendError(logger, w, "category has associated tasks", http.StatusBadRequest)
	default:
		logger.Error("storage operation failed", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}

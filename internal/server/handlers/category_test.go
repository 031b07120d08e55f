package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/pkg/api"
)

func authedRequest(method, path, userID string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(WithUserID(req.Context(), userID))
}

func addCategory(store *mockCategoryStorage, userID, name string) *models.Category {
	now := time.Now()
	category := &models.Category{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     "#336699",
		CreatedAt: now,
		UpdatedAt: now,
	}
	store.categories[category.ID] = category
	return category
}

func TestCategoryHandler_Create(t *testing.T) {
	store := newMockCategoryStorage()
	h := NewCategoryHandler(testLogger(), store)

	req := authedRequest(http.MethodPost, "/api/v1/categories", "user-1", api.CategoryRequest{Name: "Work"})
	w := httptest.NewRecorder()

	h.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Work", resp.Name)
	assert.Equal(t, DefaultCategoryColor, resp.Color)
}

func TestCategoryHandler_Create_NameConflictPerOwner(t *testing.T) {
	store := newMockCategoryStorage()
	addCategory(store, "user-a", "Work")

	h := NewCategoryHandler(testLogger(), store)

	// Повтор имени у того же владельца — конфликт
	w := httptest.NewRecorder()
	h.Create(w, authedRequest(http.MethodPost, "/api/v1/categories", "user-a", api.CategoryRequest{Name: "Work"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category name already taken")

	// То же имя у другого владельца проходит
	w = httptest.NewRecorder()
	h.Create(w, authedRequest(http.MethodPost, "/api/v1/categories", "user-b", api.CategoryRequest{Name: "Work"}))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCategoryHandler_Create_Validation(t *testing.T) {
	h := NewCategoryHandler(testLogger(), newMockCategoryStorage())

	tests := []struct {
		name      string
		req       api.CategoryRequest
		wantField string
	}{
		{name: "empty name", req: api.CategoryRequest{Name: ""}, wantField: "name"},
		{name: "bad color", req: api.CategoryRequest{Name: "Work", Color: "red"}, wantField: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Create(w, authedRequest(http.MethodPost, "/api/v1/categories", "user-1", tt.req))

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Fields)
			assert.Equal(t, tt.wantField, resp.Fields[0].Field)
		})
	}
}

func TestCategoryHandler_Get_OwnerScoping(t *testing.T) {
	store := newMockCategoryStorage()
	category := addCategory(store, "user-a", "Private")

	h := NewCategoryHandler(testLogger(), store)

	// Чужая категория — 404, как и отсутствующая
	req := authedRequest(http.MethodGet, "/api/v1/categories/"+category.ID, "user-b", nil)
	req.SetPathValue("id", category.ID)
	w := httptest.NewRecorder()

	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Владелец получает категорию
	req = authedRequest(http.MethodGet, "/api/v1/categories/"+category.ID, "user-a", nil)
	req.SetPathValue("id", category.ID)
	w = httptest.NewRecorder()

	h.Get(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryHandler_List(t *testing.T) {
	store := newMockCategoryStorage()
	addCategory(store, "user-1", "Work")
	addCategory(store, "user-1", "Personal")
	addCategory(store, "user-2", "Foreign")

	h := NewCategoryHandler(testLogger(), store)

	w := httptest.NewRecorder()
	h.List(w, authedRequest(http.MethodGet, "/api/v1/categories", "user-1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.CategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Personal", resp.Categories[0].Name)
	assert.Equal(t, "Work", resp.Categories[1].Name)
}

func TestCategoryHandler_Update(t *testing.T) {
	store := newMockCategoryStorage()
	category := addCategory(store, "user-1", "Work")

	h := NewCategoryHandler(testLogger(), store)

	req := authedRequest(http.MethodPut, "/api/v1/categories/"+category.ID, "user-1",
		api.CategoryRequest{Name: "Office", Color: "#ff0000"})
	req.SetPathValue("id", category.ID)
	w := httptest.NewRecorder()

	h.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Office", resp.Name)
	assert.Equal(t, "#ff0000", resp.Color)
}

func TestCategoryHandler_Delete_BlockedWhileInUse(t *testing.T) {
	store := newMockCategoryStorage()
	category := addCategory(store, "user-1", "Work")
	store.taskCounts[category.ID] = 2

	h := NewCategoryHandler(testLogger(), store)

	req := authedRequest(http.MethodDelete, "/api/v1/categories/"+category.ID, "user-1", nil)
	req.SetPathValue("id", category.ID)
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "associated tasks")

	// После освобождения категории удаление проходит
	store.taskCounts[category.ID] = 0

	req = authedRequest(http.MethodDelete, "/api/v1/categories/"+category.ID, "user-1", nil)
	req.SetPathValue("id", category.ID)
	w = httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCategoryHandler_NoIdentity(t *testing.T) {
	h := NewCategoryHandler(testLogger(), newMockCategoryStorage())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/server/token"
)

func testTokenService() *token.Service {
	svc, err := token.NewService(token.Config{
		AccessSecret:    []byte("test-access-secret"),
		RefreshSecret:   []byte("test-refresh-secret"),
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	if err != nil {
		panic(err)
	}
	return svc
}

// mockUserStorage is a map-backed implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // id -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return storage.ErrEmailTaken
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}

// mockCategoryStorage is a map-backed implementation of CategoryStorage for testing
type mockCategoryStorage struct {
	categories map[string]*models.Category // id -> Category
	taskCounts map[string]int              // category id -> task count
}

func newMockCategoryStorage() *mockCategoryStorage {
	return &mockCategoryStorage{
		categories: make(map[string]*models.Category),
		taskCounts: make(map[string]int),
	}
}

func (m *mockCategoryStorage) CreateCategory(ctx context.Context, category *models.Category) error {
	for _, c := range m.categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return storage.ErrCategoryNameTaken
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryStorage) GetCategory(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != userID {
		return nil, storage.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCategoryStorage) ListCategories(ctx context.Context, userID string) ([]*models.Category, error) {
	var result []*models.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCategoryStorage) UpdateCategory(ctx context.Context, category *models.Category) error {
	existing, ok := m.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return storage.ErrCategoryNotFound
	}
	for id, c := range m.categories {
		if id != category.ID && c.UserID == category.UserID && c.Name == category.Name {
			return storage.ErrCategoryNameTaken
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryStorage) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != userID {
		return storage.ErrCategoryNotFound
	}
	if m.taskCounts[categoryID] > 0 {
		return storage.ErrCategoryInUse
	}
	delete(m.categories, categoryID)
	return nil
}

// mockTaskStorage is a map-backed implementation of TaskStorage for testing
type mockTaskStorage struct {
	tasks    map[string]*models.Task // id -> Task
	listErr  error
	statsErr error
}

func newMockTaskStorage() *mockTaskStorage {
	return &mockTaskStorage{tasks: make(map[string]*models.Task)}
}

func (m *mockTaskStorage) CreateTask(ctx context.Context, task *models.Task) error {
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStorage) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, storage.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskStorage) ListTasks(ctx context.Context, userID string, filter storage.TaskFilter) ([]*models.Task, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	var matched []*models.Task
	for _, t := range m.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.Title), needle) &&
				!strings.Contains(strings.ToLower(t.Description), needle) {
				continue
			}
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		less := matched[i].CreatedAt.Before(matched[j].CreatedAt)
		if filter.SortDesc {
			return !less
		}
		return less
	})

	total := len(matched)

	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (m *mockTaskStorage) UpdateTask(ctx context.Context, task *models.Task) error {
	existing, ok := m.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return storage.ErrTaskNotFound
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStorage) DeleteTask(ctx context.Context, userID, taskID string) error {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return storage.ErrTaskNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

func (m *mockTaskStorage) CountTasksByCategory(ctx context.Context, userID, categoryID string) (int, error) {
	count := 0
	for _, t := range m.tasks {
		if t.UserID == userID && t.CategoryID != nil && *t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockTaskStorage) GetTaskStats(ctx context.Context, userID string) (*models.TaskStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}

	stats := &models.TaskStats{}
	now := time.Now()
	for _, t := range m.tasks {
		if t.UserID != userID {
			continue
		}
		stats.Total++
		switch t.Status {
		case models.TaskStatusPending:
			stats.Pending++
		case models.TaskStatusInProgress:
			stats.InProgress++
		case models.TaskStatusCompleted:
			stats.Completed++
		}
		if t.Overdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

package handlers

import (
	"net/url"
	"strconv"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/validation"
)

// Значения пагинации по умолчанию и ее верхняя граница
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// parseTaskFilter собирает типизированный фильтр из query-параметров.
// Нераспознанный статус, поле или направление сортировки — ошибка
// валидации, а не молчаливый откат к значениям по умолчанию.
func parseTaskFilter(values url.Values) (storage.TaskFilter, validation.Errors) {
	var errs validation.Errors

	filter := storage.TaskFilter{
		SortBy:   storage.SortByCreatedAt,
		SortDesc: true,
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errs.Add("page", "page must be a positive integer")
		} else {
			filter.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil || limit < 1:
			errs.Add("limit", "limit must be a positive integer")
		case limit > MaxLimit:
			errs.Add("limit", "limit must not exceed "+strconv.Itoa(MaxLimit))
		default:
			filter.Limit = limit
		}
	}

	if raw := values.Get("status"); raw != "" {
		status := models.TaskStatus(raw)
		if !status.Valid() {
			errs.Add("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
		} else {
			filter.Status = &status
		}
	}

	if raw := values.Get("category_id"); raw != "" {
		categoryID := raw
		filter.CategoryID = &categoryID
	}

	filter.Search = values.Get("search")

	if raw := values.Get("sort_by"); raw != "" {
		field := storage.SortField(raw)
		if !field.Valid() {
			errs.Add("sort_by", "sort_by must be one of created_at, due_date, title, status")
		} else {
			filter.SortBy = field
		}
	}

	if raw := values.Get("sort_dir"); raw != "" {
		switch raw {
		case "asc":
			filter.SortDesc = false
		case "desc":
			filter.SortDesc = true
		default:
			errs.Add("sort_dir", "sort_dir must be asc or desc")
		}
	}

	return filter, errs
}

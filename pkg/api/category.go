package api

import "time"

// CategoryRequest представляет запрос на создание или обновление категории
type CategoryRequest struct {
	Name  string `json:"name"`  // имя категории, уникально в рамках владельца
	Color string `json:"color"` // цвет в hex-формате, опционально
}

// Category представляет категорию в ответах API
type Category struct {
	ID        string    `json:"id"`         // UUID категории
	Name      string    `json:"name"`       // имя категории
	Color     string    `json:"color"`      // цвет в hex-формате
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
}

// CategoryListResponse представляет список категорий пользователя
type CategoryListResponse struct {
	Categories []Category `json:"categories"` // категории владельца
	Total      int        `json:"total"`      // количество категорий
}

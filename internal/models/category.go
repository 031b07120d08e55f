package models

import "time"

// Category представляет категорию задач пользователя.
// Имя категории уникально в пределах одного владельца.
type Category struct {
	ID        string    `json:"id"`         // UUID категории
	UserID    string    `json:"user_id"`    // ID владельца
	Name      string    `json:"name"`       // имя, уникальное в рамках владельца
	Color     string    `json:"color"`      // цвет для отображения, hex
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
}

package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Email        string    `json:"email"`      // уникальный email
	Name         string    `json:"name"`       // отображаемое имя
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не сериализуется
	CreatedAt    time.Time `json:"created_at"` // время создания
	UpdatedAt    time.Time `json:"updated_at"` // время последнего обновления
}

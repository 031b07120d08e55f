// Package auth содержит примитивы проверки учетных данных.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost стоимость bcrypt для хеширования паролей.
// 12 раундов: заметно дороже дефолтных 10, но все еще приемлемо для логина.
const PasswordHashCost = 12

// HashPassword хеширует пароль с использованием bcrypt.
// Соль генерируется внутри примитива, результат самодостаточен для проверки.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword проверяет, соответствует ли пароль сохраненному хешу.
// Сравнение выполняется внутри bcrypt за константное время.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет допустимый формат email.
// Упрощенная проверка: local@domain.tld, без вложенных кавычек и комментариев RFC 5322.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxNameLen максимальная длина отображаемого имени
	MaxNameLen = 100
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
)

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateRegistration проверяет поля запроса регистрации и
// возвращает список нарушений по полям
func ValidateRegistration(email, name, password string) Errors {
	var errs Errors

	if err := ValidateEmail(email); err != nil {
		errs.Add("email", err.Error())
	}

	if name == "" {
		errs.Add("name", "name cannot be empty")
	} else if len(name) > MaxNameLen {
		errs.Add("name", fmt.Sprintf("name must not exceed %d characters", MaxNameLen))
	}

	if err := ValidatePassword(password); err != nil {
		errs.Add("password", err.Error())
	}

	return errs
}

// Package validation проверяет входные данные API до обращения к хранилищу.
// Ошибки собираются по полям, чтобы клиент получил машиночитаемый список нарушений.
package validation

import "strings"

// FieldError описывает нарушение ограничения для конкретного поля
type FieldError struct {
	Field   string // имя поля
	Message string // описание нарушения
}

// Errors агрегирует нарушения по нескольким полям
type Errors []FieldError

// Error реализует интерфейс error
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Add добавляет нарушение для поля
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Empty возвращает true, если нарушений нет
func (e Errors) Empty() bool {
	return len(e) == 0
}

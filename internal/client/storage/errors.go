package storage

import "errors"

// Ошибки клиентского хранилища
var (
	// ErrAuthNotFound означает, что сохраненной сессии нет
	ErrAuthNotFound = errors.New("authentication data not found")
)

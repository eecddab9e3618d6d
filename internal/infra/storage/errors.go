// Package storage содержит ошибки, общие для всех реализаций хранилища документов.
// Ошибки конкретных репозиториев оборачивают их, поэтому сервисы проверяют
// только эти значения через errors.Is.
package storage

import "errors"

var (
	// ErrNotFound документ не найден
	ErrNotFound = errors.New("storage: not found")

	// ErrDuplicate нарушено ограничение уникальности
	ErrDuplicate = errors.New("storage: duplicate key")

	// ErrInvalidID идентификатор не соответствует формату хранилища
	ErrInvalidID = errors.New("storage: invalid id")
)

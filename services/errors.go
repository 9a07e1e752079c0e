package services

import "errors"

// ValidationKind описывает причину отказа при добавлении товара
type ValidationKind string

const (
	ValidationEmpty     ValidationKind = "empty"
	ValidationDuplicate ValidationKind = "duplicate"
)

// ValidationError представляет ошибку проверки имени товара
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrEmptyName возвращается для пустого имени
	ErrEmptyName = &ValidationError{Kind: ValidationEmpty, Message: "item name is required"}
	// ErrDuplicateName возвращается, если товар с таким именем уже есть
	ErrDuplicateName = &ValidationError{Kind: ValidationDuplicate, Message: "item already exists"}

	ErrNotConfirmed  = errors.New("removal was not confirmed")
	ErrInvalidStatus = errors.New("invalid item status")
)

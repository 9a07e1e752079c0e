package models

import "strings"

// Status представляет уровень запаса товара
type Status string

const (
	StatusEnough Status = "ENOUGH"
	StatusLow    Status = "LOW"
	StatusEmpty  Status = "EMPTY"
)

// Valid проверяет, что статус является одним из трех допустимых значений
func (s Status) Valid() bool {
	switch s {
	case StatusEnough, StatusLow, StatusEmpty:
		return true
	}
	return false
}

// NeedsShopping сообщает, попадает ли товар в список покупок
func (s Status) NeedsShopping() bool {
	return s == StatusLow || s == StatusEmpty
}

// Rank задает порядок в списке покупок: закончившиеся товары идут первыми
func (s Status) Rank() int {
	switch s {
	case StatusEmpty:
		return 0
	case StatusLow:
		return 1
	default:
		return 2
	}
}

// NextStatus возвращает следующий статус цикла ENOUGH -> LOW -> EMPTY -> ENOUGH.
// Неизвестное значение переводится в ENOUGH.
func NextStatus(current Status) Status {
	switch current {
	case StatusEnough:
		return StatusLow
	case StatusLow:
		return StatusEmpty
	default:
		return StatusEnough
	}
}

// ParseStatus разбирает статус без учета регистра
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

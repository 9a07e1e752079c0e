package models

import "time"

// Item представляет расходный товар в домашнем хозяйстве
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Note      string `json:"note"`
	Status    Status `json:"status"`
	CreatedAt int64  `json:"createdAt"` // миллисекунды Unix
	UpdatedAt int64  `json:"updatedAt"`
}

// NeedsShopping сообщает, нужно ли купить товар
func (i Item) NeedsShopping() bool {
	return i.Status.NeedsShopping()
}

// Touch обновляет время изменения, не допуская его уменьшения
func (i *Item) Touch(now time.Time) {
	ms := now.UnixMilli()
	if ms < i.UpdatedAt {
		ms = i.UpdatedAt
	}
	i.UpdatedAt = ms
}

// CloneItems возвращает независимую копию списка
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

package services

import (
	"sort"
	"strings"

	"pantry-backend/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Counts представляет количество товаров по статусам
type Counts struct {
	Enough int `json:"enough"`
	Low    int `json:"low"`
	Empty  int `json:"empty"`
}

// ShoppingCounts представляет количество товаров в отфильтрованном списке покупок
type ShoppingCounts struct {
	Low   int `json:"low"`
	Empty int `json:"empty"`
}

// View представляет производные списки для отображения
type View struct {
	Query          string         `json:"query"`
	Filtered       []models.Item  `json:"filtered"`
	Shopping       []models.Item  `json:"shopping"`
	Pantry         []models.Item  `json:"pantry"`
	Counts         Counts         `json:"counts"`
	ShoppingCounts ShoppingCounts `json:"shopping_counts"`
}

// ParseLocale разбирает тег языка для сортировки, по умолчанию английский
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Derive вычисляет список покупок, список запасов и счетчики.
// Счетчики Counts считаются по всему списку, ShoppingCounts по отфильтрованному.
func Derive(items []models.Item, query string, locale language.Tag) View {
	view := View{
		Query:    strings.TrimSpace(query),
		Filtered: make([]models.Item, 0, len(items)),
		Shopping: []models.Item{},
		Pantry:   []models.Item{},
	}

	for _, item := range items {
		switch item.Status {
		case models.StatusLow:
			view.Counts.Low++
		case models.StatusEmpty:
			view.Counts.Empty++
		default:
			view.Counts.Enough++
		}
	}

	fold := cases.Fold()
	needle := fold.String(view.Query)
	for _, item := range items {
		if needle == "" ||
			strings.Contains(fold.String(item.Name), needle) ||
			strings.Contains(fold.String(item.Note), needle) {
			view.Filtered = append(view.Filtered, item)
		}
	}

	for _, item := range view.Filtered {
		if item.NeedsShopping() {
			view.Shopping = append(view.Shopping, item)
		} else {
			view.Pantry = append(view.Pantry, item)
		}
	}

	collator := collate.New(locale)
	sort.SliceStable(view.Shopping, func(i, j int) bool {
		a, b := view.Shopping[i], view.Shopping[j]
		if a.Status.Rank() != b.Status.Rank() {
			return a.Status.Rank() < b.Status.Rank()
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})
	sort.SliceStable(view.Pantry, func(i, j int) bool {
		return collator.CompareString(view.Pantry[i].Name, view.Pantry[j].Name) < 0
	})

	for _, item := range view.Shopping {
		if item.Status == models.StatusEmpty {
			view.ShoppingCounts.Empty++
		} else {
			view.ShoppingCounts.Low++
		}
	}

	return view
}

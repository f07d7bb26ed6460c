package catalog

import (
	"time"
)

type Item struct {
	ID          string
	Name        string
	Description string
	Type        string
	Family      string
	Price       *float64
	ImageURL    string
	AccountID   string
	CreatedAt   time.Time
}

func (i *Item) HasPrice() bool {
	return i.Price != nil
}

// UnitPrice coerces a missing price to 0. Callers that care about the
// difference must check HasPrice first.
func (i *Item) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// Facets are the distinct Type and Family values of a loaded item list,
// in first-seen order, blanks skipped.
type Facets struct {
	Types    []string
	Families []string
}

func DeriveFacets(items []Item) Facets {
	var f Facets
	seenTypes := make(map[string]bool)
	seenFamilies := make(map[string]bool)

	for _, item := range items {
		if item.Type != "" && !seenTypes[item.Type] {
			seenTypes[item.Type] = true
			f.Types = append(f.Types, item.Type)
		}
		if item.Family != "" && !seenFamilies[item.Family] {
			seenFamilies[item.Family] = true
			f.Families = append(f.Families, item.Family)
		}
	}

	return f
}

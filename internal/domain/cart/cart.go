package cart

import (
	"github.com/avolkov/storefront-service/internal/domain/catalog"
)

// Line is one cart entry. Item data is captured at add time so the cart
// renders without re-fetching the catalog.
type Line struct {
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"`
	Quantity int      `json:"quantity"`
}

func (l Line) LineTotal() float64 {
	if l.Price == nil {
		return 0
	}
	return *l.Price * float64(l.Quantity)
}

// Cart is an insertion-ordered collection of lines, at most one line per
// item identity. Totals are derived on read and never stored.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() Cart {
	return Cart{}
}

// AddResult reports which branch Add took so the caller can present a
// distinct confirmation message.
type AddResult struct {
	Updated  bool
	Quantity int
	ItemName string
}

// Add returns a new cart with the item merged in: an existing line for the
// same item identity has its quantity incremented, otherwise a new line with
// quantity 1 is appended. The receiver is never mutated; prior lines keep
// their order.
func (c Cart) Add(item catalog.Item) (Cart, AddResult) {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)

	for i, line := range lines {
		if line.ItemID == item.ID {
			lines[i].Quantity++
			return Cart{Lines: lines}, AddResult{
				Updated:  true,
				Quantity: lines[i].Quantity,
				ItemName: line.Name,
			}
		}
	}

	lines = append(lines, Line{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
	return Cart{Lines: lines}, AddResult{
		Updated:  false,
		Quantity: 1,
		ItemName: item.Name,
	}
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) GrandTotal() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

func (c Cart) TotalItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

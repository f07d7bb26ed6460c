package cart

import (
	"math"
)

// CheckoutLine is the persistence-ready shape of a validated cart line.
type CheckoutLine struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// LineError names a cart line that cannot be checked out and why. The item
// name is carried so the failure can be reported to the user without an id
// lookup.
type LineError struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Reason   string `json:"reason"`
}

// ValidateForCheckout converts every line to its checkout shape. A line must
// reference an item identity and carry a defined numeric unit price; invalid
// lines are collected, not dropped. If any line fails, the returned checkout
// lines must not be submitted.
func (c Cart) ValidateForCheckout() ([]CheckoutLine, []LineError) {
	var lineErrors []LineError
	checkoutLines := make([]CheckoutLine, 0, len(c.Lines))

	for _, line := range c.Lines {
		if line.ItemID == "" {
			lineErrors = append(lineErrors, LineError{
				ItemID:   line.ItemID,
				ItemName: line.Name,
				Reason:   "missing item reference",
			})
			continue
		}
		if line.Price == nil || math.IsNaN(*line.Price) {
			lineErrors = append(lineErrors, LineError{
				ItemID:   line.ItemID,
				ItemName: line.Name,
				Reason:   "missing unit price",
			})
			continue
		}

		checkoutLines = append(checkoutLines, CheckoutLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			UnitCost: *line.Price,
		})
	}

	if len(lineErrors) > 0 {
		return nil, lineErrors
	}
	return checkoutLines, nil
}

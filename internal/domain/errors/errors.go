package errors

import (
	"errors"
)

var (
	ErrAccountNotSet   = errors.New("account not set")
	ErrAccountNotFound = errors.New("account not found")

	ErrCartEmpty = errors.New("cart empty")

	ErrItemNotFound = errors.New("item not found")

	ErrNameRequired  = errors.New("name required")
	ErrPriceRequired = errors.New("price required")

	ErrSessionNotFound = errors.New("session not found")

	ErrManagerRequired = errors.New("manager permission required")

	ErrSubmissionInFlight = errors.New("submission already in progress")
)

// CartValidationError collects the cart lines that failed checkout
// validation. Lines are reported by item name, never silently dropped.
type CartValidationError struct {
	Lines []LineDetail
}

type LineDetail struct {
	ItemID   string
	ItemName string
	Reason   string
}

func (e *CartValidationError) Error() string {
	if len(e.Lines) == 0 {
		return "cart validation failed"
	}
	msg := "cart validation failed: "
	for i, line := range e.Lines {
		if i > 0 {
			msg += "; "
		}
		msg += line.ItemName + ": " + line.Reason
	}
	return msg
}

package ports

import (
	"context"
)

type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Event names for the signals the workflows emit to the host UI.
const (
	EventItemAdded         = "item_added_to_cart"
	EventQuantityUpdated   = "cart_quantity_updated"
	EventItemCreated       = "item_created"
	EventCheckoutSucceeded = "checkout_succeeded"
)

// Notification is a toast-style signal plus an optional machine-readable
// event name and record reference.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Event   string           `json:"event,omitempty"`
	RefID   string           `json:"ref_id,omitempty"`
}

// Notifier delivers signals to the host UI. Delivery is best effort; a
// failed notification must never fail the workflow that emitted it.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

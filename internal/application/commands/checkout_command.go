package commands

import (
	"context"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/domain/cart"
	"github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type CheckoutCommand struct {
	AccountID string
	Cart      cart.Cart
}

type CheckoutResponse struct {
	PurchaseID string  `json:"purchase_id"`
	NavigateTo string  `json:"navigate_to"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}

type CheckoutHandler struct {
	purchases ports.PurchaseRepository
	notifier  ports.Notifier
	log       *logger.Logger
}

func NewCheckoutHandler(purchases ports.PurchaseRepository, notifier ports.Notifier, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		purchases: purchases,
		notifier:  notifier,
		log:       log,
	}
}

// Handle validates and submits the cart. Local validation runs in a fixed
// order (account, cart emptiness, per-line checks) and no persistence call
// is made unless all of it passes.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResponse, error) {
	if cmd.AccountID == "" {
		return nil, errors.ErrAccountNotSet
	}
	if cmd.Cart.IsEmpty() {
		return nil, errors.ErrCartEmpty
	}

	lines, lineErrors := cmd.Cart.ValidateForCheckout()
	if len(lineErrors) > 0 {
		details := make([]errors.LineDetail, 0, len(lineErrors))
		for _, le := range lineErrors {
			details = append(details, errors.LineDetail{
				ItemID:   le.ItemID,
				ItemName: le.ItemName,
				Reason:   le.Reason,
			})
		}
		return nil, &errors.CartValidationError{Lines: details}
	}

	purchaseID, err := h.purchases.CreatePurchase(ctx, cmd.AccountID, lines)
	if err != nil {
		h.log.Error("Failed to create purchase",
			"account_id", cmd.AccountID,
			"lines", len(lines),
			"error", err.Error(),
		)
		h.notifier.Notify(ctx, ports.Notification{
			Kind:    ports.KindError,
			Title:   "Error",
			Message: errors.UserMessage(err),
		})
		return nil, err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Kind:    ports.KindSuccess,
		Title:   "Success",
		Message: "Purchase created",
		Event:   ports.EventCheckoutSucceeded,
		RefID:   purchaseID,
	})

	return &CheckoutResponse{
		PurchaseID: purchaseID,
		NavigateTo: "/purchases/" + purchaseID,
		GrandTotal: cmd.Cart.GrandTotal(),
		ItemCount:  cmd.Cart.TotalItemCount(),
	}, nil
}

package ports

import (
	"context"

	"github.com/avolkov/storefront-service/internal/domain/cart"
)

type PurchaseRepository interface {
	// CreatePurchase persists a purchase with its validated lines and
	// returns the new purchase identity.
	CreatePurchase(ctx context.Context, accountID string, lines []cart.CheckoutLine) (string, error)
}

package session

import (
	"time"

	"github.com/avolkov/storefront-service/internal/domain/cart"
)

// Session is one logical browsing context: an account, its capability
// flags, and the cart that lives until checkout succeeds or the session
// expires. Cart and catalog state are only ever mutated through the same
// session key.
type Session struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name"`
	IsManager   bool      `json:"is_manager"`
	Cart        cart.Cart `json:"cart"`
	CreatedAt   time.Time `json:"created_at"`
}

func New(id, accountID, accountName string, isManager bool, createdAt time.Time) *Session {
	return &Session{
		ID:          id,
		AccountID:   accountID,
		AccountName: accountName,
		IsManager:   isManager,
		Cart:        cart.New(),
		CreatedAt:   createdAt,
	}
}

// ClearCart resets the cart after a successful checkout.
func (s *Session) ClearCart() {
	s.Cart = cart.New()
}

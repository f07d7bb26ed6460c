package ports

import (
	"context"

	"github.com/avolkov/storefront-service/internal/domain/account"
)

type AccountRepository interface {
	GetAccountContext(ctx context.Context, accountID string) (*account.Context, error)
}

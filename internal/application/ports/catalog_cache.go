package ports

import (
	"context"

	"github.com/avolkov/storefront-service/internal/domain/catalog"
)

type CatalogCache interface {
	GetItems(ctx context.Context) ([]catalog.Item, bool, error)
	SetItems(ctx context.Context, items []catalog.Item) error
	// Invalidate drops the cached list so the next read rebuilds it from
	// the repository. Called after an item is created.
	Invalidate(ctx context.Context) error
}

package ports

import (
	"context"

	"github.com/avolkov/storefront-service/internal/domain/catalog"
)

type ItemRepository interface {
	ListItems(ctx context.Context) ([]catalog.Item, error)
	GetItemByID(ctx context.Context, id string) (*catalog.Item, error)
	CreateItem(ctx context.Context, item *catalog.Item) error
}

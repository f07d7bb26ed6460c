package commands

import (
	"context"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/domain/cart"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
)

type fakeItemRepo struct {
	items     []catalog.Item
	createErr error
	created   []*catalog.Item
}

func (f *fakeItemRepo) ListItems(ctx context.Context) ([]catalog.Item, error) {
	return f.items, nil
}

func (f *fakeItemRepo) GetItemByID(ctx context.Context, id string) (*catalog.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domainErrors.ErrItemNotFound
}

func (f *fakeItemRepo) CreateItem(ctx context.Context, item *catalog.Item) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, item)
	return nil
}

type fakeImageLookup struct {
	url   string
	err   error
	calls int

	// When set, LookupImage signals entered and blocks until release is
	// closed. Used to hold a submission in flight.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeImageLookup) LookupImage(ctx context.Context, query string) (string, error) {
	f.calls++
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	return f.url, f.err
}

type fakeCatalogCache struct {
	invalidations int
}

func (f *fakeCatalogCache) GetItems(ctx context.Context) ([]catalog.Item, bool, error) {
	return nil, false, nil
}

func (f *fakeCatalogCache) SetItems(ctx context.Context, items []catalog.Item) error {
	return nil
}

func (f *fakeCatalogCache) Invalidate(ctx context.Context) error {
	f.invalidations++
	return nil
}

type fakeNotifier struct {
	notifications []ports.Notification
}

func (f *fakeNotifier) Notify(ctx context.Context, n ports.Notification) {
	f.notifications = append(f.notifications, n)
}

func (f *fakeNotifier) lastEvent() string {
	if len(f.notifications) == 0 {
		return ""
	}
	return f.notifications[len(f.notifications)-1].Event
}

type fakePurchaseRepo struct {
	purchaseID string
	err        error
	calls      int
	lastLines  []cart.CheckoutLine
}

func (f *fakePurchaseRepo) CreatePurchase(ctx context.Context, accountID string, lines []cart.CheckoutLine) (string, error) {
	f.calls++
	f.lastLines = lines
	if f.err != nil {
		return "", f.err
	}
	return f.purchaseID, nil
}

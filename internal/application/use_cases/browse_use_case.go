package use_cases

import (
	"context"
	"fmt"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/domain/cart"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	"github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/domain/session"
	"github.com/avolkov/storefront-service/internal/pkg/clock"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

// BrowseUseCase drives a browsing session: opening it for an account,
// deriving filtered catalog views, and maintaining the session's cart.
type BrowseUseCase struct {
	items    ports.ItemRepository
	accounts ports.AccountRepository
	sessions ports.SessionStore
	cache    ports.CatalogCache
	notifier ports.Notifier
	ids      *generator.IDGenerator
	clk      clock.Clock
	log      *logger.Logger
}

func NewBrowseUseCase(
	items ports.ItemRepository,
	accounts ports.AccountRepository,
	sessions ports.SessionStore,
	cache ports.CatalogCache,
	notifier ports.Notifier,
	ids *generator.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *BrowseUseCase {
	return &BrowseUseCase{
		items:    items,
		accounts: accounts,
		sessions: sessions,
		cache:    cache,
		notifier: notifier,
		ids:      ids,
		clk:      clk,
		log:      log,
	}
}

// OpenSession loads the account context and the catalog, and creates an
// empty cart for the new session.
func (uc *BrowseUseCase) OpenSession(ctx context.Context, accountID string) (*session.Session, *catalog.Store, error) {
	if accountID == "" {
		return nil, nil, errors.ErrAccountNotSet
	}

	acct, err := uc.accounts.GetAccountContext(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	store, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	s := session.New(uc.ids.SessionID(), acct.ID, acct.Name, acct.IsManager, uc.clk.Now())
	if err := uc.sessions.SaveSession(ctx, s); err != nil {
		return nil, nil, err
	}

	uc.log.Info("Session opened",
		"session_id", s.ID,
		"account_id", acct.ID,
		"is_manager", acct.IsManager,
		"items", store.Len(),
	)

	return s, store, nil
}

// BrowseItems returns the filtered catalog view for a session along with
// the facets of the full list.
func (uc *BrowseUseCase) BrowseItems(ctx context.Context, sessionID string, state catalog.FilterState) (*catalog.Store, []catalog.Item, error) {
	if _, err := uc.sessions.GetSession(ctx, sessionID); err != nil {
		return nil, nil, err
	}

	store, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	return store, store.View(state), nil
}

// AddToCart merges the item into the session's cart and reports whether a
// new line was added or an existing line's quantity was bumped.
func (uc *BrowseUseCase) AddToCart(ctx context.Context, sessionID, itemID string) (*cart.AddResult, error) {
	s, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, err := uc.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updated, result := s.Cart.Add(*item)
	s.Cart = updated

	if err := uc.sessions.SaveSession(ctx, s); err != nil {
		return nil, err
	}

	if result.Updated {
		uc.notifier.Notify(ctx, ports.Notification{
			Kind:    ports.KindSuccess,
			Title:   "Updated",
			Message: fmt.Sprintf("%s quantity updated to %d", result.ItemName, result.Quantity),
			Event:   ports.EventQuantityUpdated,
			RefID:   itemID,
		})
	} else {
		uc.notifier.Notify(ctx, ports.Notification{
			Kind:    ports.KindSuccess,
			Title:   "Added",
			Message: fmt.Sprintf("%s added to cart", result.ItemName),
			Event:   ports.EventItemAdded,
			RefID:   itemID,
		})
	}

	return &result, nil
}

func (uc *BrowseUseCase) GetSession(ctx context.Context, sessionID string) (*session.Session, error) {
	return uc.sessions.GetSession(ctx, sessionID)
}

// ClearCart resets the session's cart after a successful checkout.
func (uc *BrowseUseCase) ClearCart(ctx context.Context, sessionID string) error {
	s, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	s.ClearCart()
	return uc.sessions.SaveSession(ctx, s)
}

// loadCatalog reads the item list from the cache, falling back to the
// repository and refilling the cache on a miss.
func (uc *BrowseUseCase) loadCatalog(ctx context.Context) (*catalog.Store, error) {
	items, ok, err := uc.cache.GetItems(ctx)
	if err != nil {
		uc.log.Warn("Catalog cache read failed", "error", err.Error())
	}
	if ok && err == nil {
		return catalog.NewStore(items), nil
	}

	items, err = uc.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetItems(ctx, items); err != nil {
		uc.log.Warn("Catalog cache write failed", "error", err.Error())
	}

	return catalog.NewStore(items), nil
}

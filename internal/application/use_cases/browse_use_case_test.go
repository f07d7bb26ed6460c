package use_cases

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/domain/account"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/domain/session"
	"github.com/avolkov/storefront-service/internal/pkg/clock"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type memoryItemRepo struct {
	items     []catalog.Item
	listCalls int
}

func (m *memoryItemRepo) ListItems(ctx context.Context) ([]catalog.Item, error) {
	m.listCalls++
	return m.items, nil
}

func (m *memoryItemRepo) GetItemByID(ctx context.Context, id string) (*catalog.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, domainErrors.ErrItemNotFound
}

func (m *memoryItemRepo) CreateItem(ctx context.Context, item *catalog.Item) error {
	m.items = append(m.items, *item)
	return nil
}

type memoryAccountRepo struct {
	accounts map[string]account.Context
}

func (m *memoryAccountRepo) GetAccountContext(ctx context.Context, accountID string) (*account.Context, error) {
	acct, ok := m.accounts[accountID]
	if !ok {
		return nil, domainErrors.ErrAccountNotFound
	}
	return &acct, nil
}

type memorySessionStore struct {
	sessions map[string]session.Session
}

func (m *memorySessionStore) SaveSession(ctx context.Context, s *session.Session) error {
	m.sessions[s.ID] = *s
	return nil
}

func (m *memorySessionStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domainErrors.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memorySessionStore) DeleteSession(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type memoryCatalogCache struct {
	items  []catalog.Item
	filled bool
}

func (m *memoryCatalogCache) GetItems(ctx context.Context) ([]catalog.Item, bool, error) {
	return m.items, m.filled, nil
}

func (m *memoryCatalogCache) SetItems(ctx context.Context, items []catalog.Item) error {
	m.items = items
	m.filled = true
	return nil
}

func (m *memoryCatalogCache) Invalidate(ctx context.Context) error {
	m.items = nil
	m.filled = false
	return nil
}

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) Notify(ctx context.Context, n ports.Notification) {
	r.events = append(r.events, n.Event)
}

func price(v float64) *float64 {
	return &v
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "ITM-1", Name: "Widget", Type: "Hardware", Family: "Tools", Price: price(10)},
		{ID: "ITM-2", Name: "Gadget", Type: "Hardware", Family: "Toys", Price: price(5)},
		{ID: "ITM-3", Name: "Service Plan", Type: "Service", Family: "Support", Price: price(99)},
	}
}

type browseFixture struct {
	uc       *BrowseUseCase
	repo     *memoryItemRepo
	sessions *memorySessionStore
	cache    *memoryCatalogCache
	notifier *recordingNotifier
}

func newBrowseFixture() *browseFixture {
	repo := &memoryItemRepo{items: testItems()}
	accounts := &memoryAccountRepo{accounts: map[string]account.Context{
		"001A": {ID: "001A", Name: "Acme Corp", IsManager: true},
		"001B": {ID: "001B", Name: "Globex", IsManager: false},
	}}
	sessions := &memorySessionStore{sessions: map[string]session.Session{}}
	cache := &memoryCatalogCache{}
	notifier := &recordingNotifier{}
	uc := NewBrowseUseCase(
		repo,
		accounts,
		sessions,
		cache,
		notifier,
		generator.NewIDGenerator(),
		clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		logger.NewLoggerWithOutput(io.Discard),
	)
	return &browseFixture{uc: uc, repo: repo, sessions: sessions, cache: cache, notifier: notifier}
}

func TestOpenSessionRequiresAccount(t *testing.T) {
	f := newBrowseFixture()

	_, _, err := f.uc.OpenSession(context.Background(), "")

	assert.ErrorIs(t, err, domainErrors.ErrAccountNotSet)
}

func TestOpenSessionUnknownAccount(t *testing.T) {
	f := newBrowseFixture()

	_, _, err := f.uc.OpenSession(context.Background(), "missing")

	assert.ErrorIs(t, err, domainErrors.ErrAccountNotFound)
}

func TestOpenSessionCreatesEmptyCart(t *testing.T) {
	f := newBrowseFixture()

	s, store, err := f.uc.OpenSession(context.Background(), "001A")

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Acme Corp", s.AccountName)
	assert.True(t, s.IsManager)
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, 3, store.Len())

	stored, err := f.uc.GetSession(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.AccountID, stored.AccountID)
}

func TestOpenSessionFillsCatalogCache(t *testing.T) {
	f := newBrowseFixture()

	_, _, err := f.uc.OpenSession(context.Background(), "001A")

	require.NoError(t, err)
	assert.True(t, f.cache.filled)
	assert.Equal(t, 1, f.repo.listCalls)
}

func TestBrowseItemsUsesCacheOnSecondRead(t *testing.T) {
	f := newBrowseFixture()
	s, _, err := f.uc.OpenSession(context.Background(), "001A")
	require.NoError(t, err)

	_, items, err := f.uc.BrowseItems(context.Background(), s.ID, catalog.FilterState{SearchKey: "wid"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, 1, f.repo.listCalls, "second read should come from the cache")
}

func TestBrowseItemsUnknownSession(t *testing.T) {
	f := newBrowseFixture()

	_, _, err := f.uc.BrowseItems(context.Background(), "nope", catalog.FilterState{})

	assert.ErrorIs(t, err, domainErrors.ErrSessionNotFound)
}

func TestAddToCartPersistsAndMerges(t *testing.T) {
	f := newBrowseFixture()
	s, _, err := f.uc.OpenSession(context.Background(), "001B")
	require.NoError(t, err)

	first, err := f.uc.AddToCart(context.Background(), s.ID, "ITM-1")
	require.NoError(t, err)
	assert.False(t, first.Updated)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, "Widget", first.ItemName)

	second, err := f.uc.AddToCart(context.Background(), s.ID, "ITM-1")
	require.NoError(t, err)
	assert.True(t, second.Updated)
	assert.Equal(t, 2, second.Quantity)

	stored, err := f.uc.GetSession(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, stored.Cart.Lines, 1)
	assert.Equal(t, 2, stored.Cart.Lines[0].Quantity)
	assert.Equal(t, 20.0, stored.Cart.GrandTotal())

	assert.Equal(t, []string{ports.EventItemAdded, ports.EventQuantityUpdated}, f.notifier.events)
}

func TestAddToCartUnknownItem(t *testing.T) {
	f := newBrowseFixture()
	s, _, err := f.uc.OpenSession(context.Background(), "001B")
	require.NoError(t, err)

	_, err = f.uc.AddToCart(context.Background(), s.ID, "ITM-404")

	assert.ErrorIs(t, err, domainErrors.ErrItemNotFound)
	stored, getErr := f.uc.GetSession(context.Background(), s.ID)
	require.NoError(t, getErr)
	assert.True(t, stored.Cart.IsEmpty())
}

func TestClearCartEmptiesStoredSession(t *testing.T) {
	f := newBrowseFixture()
	s, _, err := f.uc.OpenSession(context.Background(), "001B")
	require.NoError(t, err)
	_, err = f.uc.AddToCart(context.Background(), s.ID, "ITM-2")
	require.NoError(t, err)

	require.NoError(t, f.uc.ClearCart(context.Background(), s.ID))

	stored, err := f.uc.GetSession(context.Background(), s.ID)
	require.NoError(t, err)
	assert.True(t, stored.Cart.IsEmpty())
	assert.Zero(t, stored.Cart.TotalItemCount())
}

package commands

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/storefront-service/internal/application/ports"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/pkg/clock"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

func newCreateItemFixture() (*CreateItemHandler, *fakeItemRepo, *fakeImageLookup, *fakeCatalogCache, *fakeNotifier) {
	repo := &fakeItemRepo{}
	images := &fakeImageLookup{}
	cache := &fakeCatalogCache{}
	notifier := &fakeNotifier{}
	handler := NewCreateItemHandler(
		repo,
		images,
		cache,
		notifier,
		generator.NewIDGenerator(),
		clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		logger.NewLoggerWithOutput(io.Discard),
		5*time.Second,
	)
	return handler, repo, images, cache, notifier
}

func price(v float64) *float64 {
	return &v
}

func TestCreateItemRequiresName(t *testing.T) {
	handler, repo, images, _, notifier := newCreateItemFixture()

	resp, err := handler.Handle(context.Background(), CreateItemCommand{Price: price(10)})

	assert.ErrorIs(t, err, domainErrors.ErrNameRequired)
	assert.Nil(t, resp)
	assert.Zero(t, images.calls)
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.notifications)
	assert.False(t, handler.Submitting())
}

func TestCreateItemRequiresPrice(t *testing.T) {
	handler, repo, images, _, _ := newCreateItemFixture()

	resp, err := handler.Handle(context.Background(), CreateItemCommand{Name: "Widget"})

	assert.ErrorIs(t, err, domainErrors.ErrPriceRequired)
	assert.Nil(t, resp)
	assert.Zero(t, images.calls)
	assert.Empty(t, repo.created)
}

func TestCreateItemImageLookupFailureIsNonFatal(t *testing.T) {
	handler, repo, images, cache, notifier := newCreateItemFixture()
	images.err = errors.New("upstream down")

	resp, err := handler.Handle(context.Background(), CreateItemCommand{
		Name:  "Widget",
		Price: price(10),
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].ImageURL)
	assert.Empty(t, resp.ImageURL)
	assert.Equal(t, 1, cache.invalidations)
	assert.Equal(t, ports.EventItemCreated, notifier.lastEvent())
}

func TestCreateItemSetsImageURL(t *testing.T) {
	handler, repo, images, _, _ := newCreateItemFixture()
	images.url = "https://images.example/widget.jpg"

	resp, err := handler.Handle(context.Background(), CreateItemCommand{
		Name:        "Widget",
		Description: "A widget",
		Type:        "Hardware",
		Family:      "Tools",
		Price:       price(12.5),
		AccountID:   "001A",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "https://images.example/widget.jpg", created.ImageURL)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "Hardware", created.Type)
	assert.Equal(t, "001A", created.AccountID)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, created.ID, resp.ID)
}

func TestCreateItemRepositoryFailure(t *testing.T) {
	handler, repo, _, cache, notifier := newCreateItemFixture()
	repo.createErr = errors.New("insert failed")

	resp, err := handler.Handle(context.Background(), CreateItemCommand{
		Name:  "Widget",
		Price: price(10),
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Zero(t, cache.invalidations)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, ports.KindError, notifier.notifications[0].Kind)
	assert.False(t, handler.Submitting())
}

func TestCreateItemRejectsConcurrentSubmission(t *testing.T) {
	handler, _, images, _, _ := newCreateItemFixture()
	images.entered = make(chan struct{})
	images.release = make(chan struct{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := handler.Handle(context.Background(), CreateItemCommand{
			Name:  "Widget",
			Price: price(10),
		})
		firstDone <- err
	}()

	<-images.entered
	assert.True(t, handler.Submitting())

	_, err := handler.Handle(context.Background(), CreateItemCommand{
		Name:  "Gadget",
		Price: price(5),
	})
	assert.ErrorIs(t, err, domainErrors.ErrSubmissionInFlight)

	close(images.release)
	require.NoError(t, <-firstDone)
	assert.False(t, handler.Submitting())
}

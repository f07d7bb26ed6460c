package commands

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	"github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/pkg/clock"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type CreateItemCommand struct {
	Name        string
	Description string
	Type        string
	Family      string
	Price       *float64
	AccountID   string
}

type CreateItemResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url,omitempty"`
}

type CreateItemHandler struct {
	items    ports.ItemRepository
	images   ports.ImageLookup
	cache    ports.CatalogCache
	notifier ports.Notifier
	ids      *generator.IDGenerator
	clk      clock.Clock
	log      *logger.Logger
	timeout  time.Duration

	// One submission at a time per handler instance. A second submit while
	// the first is in flight is rejected instead of issuing a duplicate
	// create call.
	inFlight atomic.Bool
}

func NewCreateItemHandler(
	items ports.ItemRepository,
	images ports.ImageLookup,
	cache ports.CatalogCache,
	notifier ports.Notifier,
	ids *generator.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
	timeout time.Duration,
) *CreateItemHandler {
	return &CreateItemHandler{
		items:    items,
		images:   images,
		cache:    cache,
		notifier: notifier,
		ids:      ids,
		clk:      clk,
		log:      log,
		timeout:  timeout,
	}
}

// Submitting reports whether a submission attempt is currently in flight.
func (h *CreateItemHandler) Submitting() bool {
	return h.inFlight.Load()
}

// Handle runs one submission attempt. Preconditions are checked in order
// before any collaborator call: name first, then price. Image lookup failure
// is non-fatal; the record is created without an image.
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*CreateItemResponse, error) {
	if cmd.Name == "" {
		return nil, errors.ErrNameRequired
	}
	if cmd.Price == nil || math.IsNaN(*cmd.Price) {
		return nil, errors.ErrPriceRequired
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		return nil, errors.ErrSubmissionInFlight
	}
	defer h.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	imageURL, err := h.images.LookupImage(ctx, cmd.Name)
	if err != nil {
		h.log.Warn("Image lookup failed, creating item without image",
			"query", cmd.Name,
			"error", err.Error(),
		)
		imageURL = ""
	}

	item := &catalog.Item{
		ID:          h.ids.ItemID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Type:        cmd.Type,
		Family:      cmd.Family,
		Price:       cmd.Price,
		AccountID:   cmd.AccountID,
		CreatedAt:   h.clk.Now(),
	}
	if imageURL != "" {
		item.ImageURL = imageURL
	}

	if err := h.items.CreateItem(ctx, item); err != nil {
		h.log.Error("Failed to create item",
			"name", cmd.Name,
			"error", err.Error(),
		)
		h.notifier.Notify(ctx, ports.Notification{
			Kind:    ports.KindError,
			Title:   "Error",
			Message: errors.UserMessage(err),
		})
		return nil, err
	}

	if err := h.cache.Invalidate(ctx); err != nil {
		h.log.Warn("Failed to invalidate catalog cache", "error", err.Error())
	}

	h.notifier.Notify(ctx, ports.Notification{
		Kind:    ports.KindSuccess,
		Title:   "Success",
		Message: fmt.Sprintf("%s created", cmd.Name),
		Event:   ports.EventItemCreated,
		RefID:   item.ID,
	})

	return &CreateItemResponse{
		ID:       item.ID,
		ImageURL: item.ImageURL,
	}, nil
}

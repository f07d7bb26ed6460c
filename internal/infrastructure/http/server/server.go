package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avolkov/storefront-service/internal/application/commands"
	"github.com/avolkov/storefront-service/internal/application/use_cases"
	"github.com/avolkov/storefront-service/internal/config"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/handlers"
	"github.com/avolkov/storefront-service/internal/infrastructure/notify"
	"github.com/avolkov/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/avolkov/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/avolkov/storefront-service/internal/infrastructure/unsplash"
	"github.com/avolkov/storefront-service/internal/pkg/clock"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type Server struct {
	server          *http.Server
	logger          *logger.Logger
	hub             *notify.Hub
	healthHandler   *handlers.HealthHandler
	sessionHandler  *handlers.SessionHandler
	catalogHandler  *handlers.CatalogHandler
	cartHandler     *handlers.CartHandler
	checkoutHandler *handlers.CheckoutHandler
	itemHandler     *handlers.ItemHandler
}

func NewServer(cfg *config.Config, pgConn *postgres.Connection, redisConn *redis.Connection, hub *notify.Hub, log *logger.Logger) (*Server, error) {
	itemRepo := postgres.NewItemRepository(pgConn)
	accountRepo := postgres.NewAccountRepository(pgConn)

	ids := generator.NewIDGenerator()
	clk := clock.NewRealClock()

	purchaseRepo := postgres.NewPurchaseRepository(pgConn, ids)
	sessionStore := redis.NewSessionStore(redisConn, cfg.Session.TTL(), log)
	catalogCache := redis.NewCatalogCache(redisConn, cfg.Session.CatalogTTL(), log)

	imageLookup, err := unsplash.NewClient(cfg.Unsplash, log)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewMultiNotifier(
		hub,
		notify.NewRedisNotifier(redisConn.GetClient(), log),
	)

	browse := use_cases.NewBrowseUseCase(itemRepo, accountRepo, sessionStore, catalogCache, notifier, ids, clk, log)
	createItem := commands.NewCreateItemHandler(itemRepo, imageLookup, catalogCache, notifier, ids, clk, log, cfg.Workflow.SubmitTimeout())
	checkout := commands.NewCheckoutHandler(purchaseRepo, notifier, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server:          server,
		logger:          log,
		hub:             hub,
		healthHandler:   handlers.NewHealthHandler(pgConn.GetDB(), redisConn.GetClient(), log),
		sessionHandler:  handlers.NewSessionHandler(browse, log),
		catalogHandler:  handlers.NewCatalogHandler(browse, log),
		cartHandler:     handlers.NewCartHandler(browse, log),
		checkoutHandler: handlers.NewCheckoutHandler(browse, checkout, log),
		itemHandler:     handlers.NewItemHandler(browse, createItem, log),
	}, nil
}

func (s *Server) ListenAndServe() error {
	s.server.Handler = s.setupRoutes()

	s.logger.Info("Starting HTTP server", "address", s.server.Addr)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

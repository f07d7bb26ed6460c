package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avolkov/storefront-service/internal/infrastructure/http/middleware"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
)

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.healthHandler.HandleHealth())

	mux.HandleFunc("/sessions", s.sessionHandler.HandleOpenSession)
	mux.HandleFunc("/sessions/", s.handleSessionRoutes)
	mux.HandleFunc("/items", s.itemHandler.HandleCreateItem)

	handler := middleware.NewRecoveryMiddleware(s.logger)(mux)
	handler = middleware.NewLoggingMiddleware(s.logger)(handler)
	handler = monitoring.WrapHandler(handler)
	handler = s.corsMiddleware(handler)
	handler = s.timeoutMiddleware(handler)

	// The event stream must stay outside the timeout handler: WebSocket
	// connections are long-lived and hijack the underlying conn.
	root := http.NewServeMux()
	root.HandleFunc("/events", s.hub.ServeWS)
	root.Handle("/", handler)

	return root
}

// handleSessionRoutes dispatches /sessions/{id}/... paths.
func (s *Server) handleSessionRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	sessionID := parts[0]

	switch {
	case len(parts) == 2 && parts[1] == "items":
		s.catalogHandler.HandleBrowseItems(w, r, sessionID)
	case len(parts) == 2 && parts[1] == "cart":
		s.cartHandler.HandleGetCart(w, r, sessionID)
	case len(parts) == 3 && parts[1] == "cart" && parts[2] == "items":
		s.cartHandler.HandleAddToCart(w, r, sessionID)
	case len(parts) == 2 && parts[1] == "checkout":
		s.checkoutHandler.HandleCheckout(w, r, sessionID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, 60*time.Second, "Request timeout")
}

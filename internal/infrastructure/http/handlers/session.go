package handlers

import (
	"net/http"
	"time"

	"github.com/avolkov/storefront-service/internal/application/use_cases"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/response"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type SessionHandler struct {
	browse *use_cases.BrowseUseCase
	log    *logger.Logger
}

func NewSessionHandler(browse *use_cases.BrowseUseCase, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		browse: browse,
		log:    log,
	}
}

type ItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Family      string   `json:"family,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type OpenSessionResponse struct {
	SessionID   string     `json:"session_id"`
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name"`
	IsManager   bool       `json:"is_manager"`
	Items       []ItemView `json:"items"`
	Types       []string   `json:"types"`
	Families    []string   `json:"families"`
	CreatedAt   string     `json:"created_at"`
}

func (h *SessionHandler) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"account_id": "account_id is required",
		})
		return
	}

	sess, store, err := h.browse.OpenSession(r.Context(), accountID)
	if err != nil {
		h.log.Error("Failed to open session", "account_id", accountID, "error", err.Error())
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordSessionOpened()

	facets := store.Facets()
	response.WriteCreated(w, OpenSessionResponse{
		SessionID:   sess.ID,
		AccountID:   sess.AccountID,
		AccountName: sess.AccountName,
		IsManager:   sess.IsManager,
		Items:       toItemViews(store.Items()),
		Types:       facets.Types,
		Families:    facets.Families,
		CreatedAt:   sess.CreatedAt.Format(time.RFC3339),
	})
}

func toItemViews(items []catalog.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Type:        item.Type,
			Family:      item.Family,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
		})
	}
	return views
}

package handlers

import (
	"net/http"

	"github.com/avolkov/storefront-service/internal/application/use_cases"
	"github.com/avolkov/storefront-service/internal/domain/catalog"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/response"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type CatalogHandler struct {
	browse *use_cases.BrowseUseCase
	log    *logger.Logger
}

func NewCatalogHandler(browse *use_cases.BrowseUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		browse: browse,
		log:    log,
	}
}

type BrowseResponse struct {
	Items    []ItemView `json:"items"`
	Total    int        `json:"total"`
	Types    []string   `json:"types"`
	Families []string   `json:"families"`
}

// HandleBrowseItems serves the filtered catalog view of a session. The
// search, type and family query params mirror the filter controls.
func (h *CatalogHandler) HandleBrowseItems(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	state := catalog.FilterState{
		SearchKey:        query.Get("search"),
		SelectedTypes:    query["type"],
		SelectedFamilies: query["family"],
	}

	store, filtered, err := h.browse.BrowseItems(r.Context(), sessionID, state)
	if err != nil {
		h.log.Error("Failed to browse items", "session_id", sessionID, "error", err.Error())
		response.WriteDomainError(w, err)
		return
	}

	facets := store.Facets()
	response.WriteSuccess(w, BrowseResponse{
		Items:    toItemViews(filtered),
		Total:    store.Len(),
		Types:    facets.Types,
		Families: facets.Families,
	})
}

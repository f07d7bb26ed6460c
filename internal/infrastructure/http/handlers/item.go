package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/storefront-service/internal/application/commands"
	"github.com/avolkov/storefront-service/internal/application/use_cases"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/response"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type ItemHandler struct {
	browse     *use_cases.BrowseUseCase
	createItem *commands.CreateItemHandler
	log        *logger.Logger
}

func NewItemHandler(browse *use_cases.BrowseUseCase, createItem *commands.CreateItemHandler, log *logger.Logger) *ItemHandler {
	return &ItemHandler{
		browse:     browse,
		createItem: createItem,
		log:        log,
	}
}

type CreateItemRequest struct {
	SessionID   string   `json:"session_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Family      string   `json:"family,omitempty"`
	Price       *float64 `json:"price"`
}

// HandleCreateItem runs the item creation workflow. The session's account
// must carry the manager capability.
func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}
	if req.SessionID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"session_id": "session_id is required",
		})
		return
	}

	sess, err := h.browse.GetSession(r.Context(), req.SessionID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	if !sess.IsManager {
		response.WriteDomainError(w, domainErrors.ErrManagerRequired)
		return
	}

	monitoring.RecordItemCreationAttempt()

	resp, err := h.createItem.Handle(r.Context(), commands.CreateItemCommand{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Family:      req.Family,
		Price:       req.Price,
		AccountID:   sess.AccountID,
	})
	if err != nil {
		h.log.Error("Item creation failed",
			"session_id", req.SessionID,
			"name", req.Name,
			"error", err.Error(),
		)
		monitoring.RecordItemCreationFailure(err.Error())
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordItemCreationSuccess()
	response.WriteCreated(w, resp)
}

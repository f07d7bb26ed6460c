package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/storefront-service/internal/application/use_cases"
	"github.com/avolkov/storefront-service/internal/domain/cart"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/response"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type CartHandler struct {
	browse *use_cases.BrowseUseCase
	log    *logger.Logger
}

func NewCartHandler(browse *use_cases.BrowseUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{
		browse: browse,
		log:    log,
	}
}

type AddToCartRequest struct {
	ItemID string `json:"item_id"`
}

type AddToCartResponse struct {
	Outcome  string `json:"outcome"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
}

type CartLineView struct {
	ItemID    string   `json:"item_id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price,omitempty"`
	Quantity  int      `json:"quantity"`
	LineTotal float64  `json:"line_total"`
}

type CartView struct {
	Lines          []CartLineView `json:"lines"`
	GrandTotal     float64        `json:"grand_total"`
	TotalItemCount int            `json:"total_item_count"`
	Empty          bool           `json:"empty"`
}

func (h *CartHandler) HandleAddToCart(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}
	if req.ItemID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"item_id": "item_id is required",
		})
		return
	}

	result, err := h.browse.AddToCart(r.Context(), sessionID, req.ItemID)
	if err != nil {
		h.log.Error("Failed to add item to cart",
			"session_id", sessionID,
			"item_id", req.ItemID,
			"error", err.Error(),
		)
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCartAdd(result.Updated)

	resp := AddToCartResponse{
		ItemName: result.ItemName,
		Quantity: result.Quantity,
	}
	if result.Updated {
		resp.Outcome = "quantity_updated"
		resp.Message = result.ItemName + " quantity updated"
	} else {
		resp.Outcome = "added"
		resp.Message = result.ItemName + " added to cart"
	}

	response.WriteSuccess(w, resp)
}

func (h *CartHandler) HandleGetCart(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, err := h.browse.GetSession(r.Context(), sessionID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, toCartView(sess.Cart))
}

func toCartView(c cart.Cart) CartView {
	lines := make([]CartLineView, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, CartLineView{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}

	return CartView{
		Lines:          lines,
		GrandTotal:     c.GrandTotal(),
		TotalItemCount: c.TotalItemCount(),
		Empty:          c.IsEmpty(),
	}
}

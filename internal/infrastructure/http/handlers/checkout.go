package handlers

import (
	"net/http"

	"github.com/avolkov/storefront-service/internal/application/commands"
	"github.com/avolkov/storefront-service/internal/application/use_cases"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/response"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

type CheckoutHandler struct {
	browse   *use_cases.BrowseUseCase
	checkout *commands.CheckoutHandler
	log      *logger.Logger
}

func NewCheckoutHandler(browse *use_cases.BrowseUseCase, checkout *commands.CheckoutHandler, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		browse:   browse,
		checkout: checkout,
		log:      log,
	}
}

func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, err := h.browse.GetSession(r.Context(), sessionID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCheckoutAttempt()

	resp, err := h.checkout.Handle(r.Context(), commands.CheckoutCommand{
		AccountID: sess.AccountID,
		Cart:      sess.Cart,
	})
	if err != nil {
		h.log.Error("Checkout failed",
			"session_id", sessionID,
			"account_id", sess.AccountID,
			"error", err.Error(),
		)
		monitoring.RecordCheckoutFailure(err.Error())
		response.WriteDomainError(w, err)
		return
	}

	// The purchase is persisted; an empty-cart save failure only means the
	// session will retry clearing next time it loads.
	if err := h.browse.ClearCart(r.Context(), sessionID); err != nil {
		h.log.Warn("Failed to clear cart after checkout", "session_id", sessionID, "error", err.Error())
	}

	monitoring.RecordCheckoutSuccess()
	response.WriteCreated(w, resp)
}

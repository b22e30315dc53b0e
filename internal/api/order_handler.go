package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// OrderHandler handles order-related API requests.
type OrderHandler struct {
	orderStore store.OrderStore
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
func NewOrderHandler(
	orderStore store.OrderStore,
	userStore store.UserStore,
	logger *slog.Logger,
) *OrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		orderStore: orderStore,
		userStore:  userStore,
		logger:     logger.With(slog.String("component", "order_handler")),
	}
}

// Create handles POST /api/orders. Requires authentication. The order is
// owned by the requesting principal; product_id is optional but must point
// at an existing product when present.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := resolvePrincipal(r.Context(), h.userStore)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CreateOrderRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, &HTTPError{Status: http.StatusBadRequest, Message: "Invalid request format."})
		return
	}

	order, err := domain.NewOrder(principal.ID, req.ProductID)
	if err != nil {
		h.logger.Warn("rejected order payload", "error", err)
		HandleAPIError(w, r, NewFieldError("product_id", "The selected product_id is invalid."))
		return
	}

	if err := h.orderStore.Create(r.Context(), order); err != nil {
		// The foreign key constraint is the arbiter for existence, so a
		// vanished product races to the same answer as a bogus one.
		if errors.Is(err, store.ErrProductNotFound) {
			HandleAPIError(w, r, NewFieldError("product_id", "The selected product_id is invalid."))
			return
		}
		h.logger.Error("failed to create order", "error", err, "order_id", order.ID)
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondSuccess(w, r, http.StatusCreated, "Order created successfully.", OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		ProductID: order.ProductID,
		CreatedAt: order.CreatedAt,
	})
}

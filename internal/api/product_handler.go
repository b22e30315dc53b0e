package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// ProductHandler handles product-related API requests.
type ProductHandler struct {
	productStore store.ProductStore
	userStore    store.UserStore
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(
	productStore store.ProductStore,
	userStore store.UserStore,
	logger *slog.Logger,
) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		productStore: productStore,
		userStore:    userStore,
		validator:    newValidator(),
		logger:       logger.With(slog.String("component", "product_handler")),
	}
}

// Create handles POST /api/products. Requires authentication.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := resolvePrincipal(r.Context(), h.userStore); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CreateProductRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, &HTTPError{Status: http.StatusBadRequest, Message: "Invalid request format."})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, translateValidationErrors(err))
		return
	}

	product, err := domain.NewProduct(req.Name, req.Description, *req.Price)
	if err != nil {
		h.logger.Warn("rejected product payload", "error", err)
		HandleAPIError(w, r, &ValidationError{})
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		h.logger.Error("failed to create product", "error", err, "product_id", product.ID)
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondSuccess(w, r, http.StatusCreated, "Product created successfully.", productToResponse(product))
}

// List handles GET /api/products. Requires authentication.
// Products come back in creation order, newest first.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := resolvePrincipal(r.Context(), h.userStore); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	products, err := h.productStore.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		HandleAPIError(w, r, err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, productToResponse(product))
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Products fetched successfully.", ProductListResponse{
		Products: items,
	})
}

// productToResponse converts a domain.Product to its response form.
func productToResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
	}
}

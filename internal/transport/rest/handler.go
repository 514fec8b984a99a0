// Package rest provides HTTP handlers for inventory operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	basePath        = "/api/v1/products"
	defaultPageSize = 20
	// genericErrorMessage is returned for every unexpected error; details go to the log only.
	genericErrorMessage = "Something went wrong. Please try again later."
)

type Handler struct {
	service  service.InventoryService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the provided service.
func NewHandler(service service.InventoryService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: web.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the inventory routes and the health check.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(basePath, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/summary", h.Summary)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/quantity", h.UpdateQuantity)
			r.Delete("/", h.Delete)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := web.ValidationErrors(validationErrors)
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateProduct(r.Context(), service.ProductCreate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    *req.Price,
	})
	if err != nil {
		h.respondServiceError(w, r, "create product", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created", "ID", created.ID, "Name", created.Name)
	w.Header().Set("Location", fmt.Sprintf("%s/%s", basePath, created.ID))
	web.RespondJSON(w, h.logger, http.StatusCreated, toProductResponse(created))
}

// List returns one page of products. Query parameters page (>= 0) and size (> 0) are optional.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := web.ParseValidateGteOr(r, w, h.logger, "page", 0, 0)
	if !ok {
		return
	}
	size, ok := web.ParseValidateGtOr(r, w, h.logger, "size", 0, defaultPageSize)
	if !ok {
		return
	}
	result, err := h.service.ListProducts(r.Context(), page, size)
	if err != nil {
		h.respondServiceError(w, r, "list products", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, toPageResponse(result))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := web.RequireQuery(w, r, h.logger, "query")
	if !ok {
		return
	}
	products, err := h.service.SearchProducts(r.Context(), query)
	if err != nil {
		h.respondServiceError(w, r, "search products", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, toProductResponses(products))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.respondServiceError(w, r, "get summary", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, toSummaryResponse(summary))
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "get product", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, toProductResponse(product))
}

// UpdateQuantity sets the quantity given by the required quantity query parameter.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	quantity, ok := web.ParseInt32(r, w, h.logger, "quantity")
	if !ok {
		return
	}
	updated, err := h.service.UpdateQuantity(r.Context(), id, quantity)
	if err != nil {
		h.respondServiceError(w, r, "update quantity", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Quantity updated", "ID", updated.ID, "Quantity", updated.Quantity)
	web.RespondJSON(w, h.logger, http.StatusOK, toProductResponse(updated))
}

// Delete deletes a product by its ID.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.respondServiceError(w, r, "delete product", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondServiceError translates a service error into a status code and message.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case perrors.IsBusinessRule(err):
		h.logger.WarnContext(r.Context(), "Business rule violated", "op", op, "error", err)
		web.RespondError(w, h.logger, http.StatusUnprocessableEntity, ruleMessage(err))
	case errors.Is(err, perrors.ErrProductNotFound):
		h.logger.WarnContext(r.Context(), "Product not found", "op", op)
		web.RespondError(w, h.logger, http.StatusNotFound, perrors.ErrProductNotFound.Error())
	case errors.Is(err, perrors.ErrStoreUnavailable):
		h.logger.ErrorContext(r.Context(), "Store unavailable", "op", op, "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, perrors.ErrStoreUnavailable.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Request failed", "op", op, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, genericErrorMessage)
	}
}

// ruleMessage returns the message of the violated rule without any wrapping context.
func ruleMessage(err error) string {
	for _, rule := range []error{
		perrors.ErrDuplicateName,
		perrors.ErrInvalidQuantity,
		perrors.ErrInvalidPrice,
		perrors.ErrInvalidName,
	} {
		if errors.Is(err, rule) {
			return rule.Error()
		}
	}
	return err.Error()
}

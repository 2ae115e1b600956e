package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplite/shoplite-go/internal/middleware"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
	"github.com/shoplite/shoplite-go/internal/service"
	"github.com/shoplite/shoplite-go/internal/validate"
)

// ProductHandler handles HTTP requests for catalog reads and
// owner-scoped product mutations.
type ProductHandler struct {
	products *service.ProductService
	auth     *service.AuthService
	dev      bool
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *service.ProductService, auth *service.AuthService, dev bool) *ProductHandler {
	return &ProductHandler{products: products, auth: auth, dev: dev}
}

// HandleList handles GET /api/products requests (public).
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.products.List(r.Context(), filterFromQuery(r))
	if err != nil {
		writeInternal(w, "failed to list products", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success":     true,
		"count":       len(page.Items),
		"total":       page.Total,
		"page":        page.Page,
		"totalPages":  page.TotalPages,
		"hasNextPage": page.HasNextPage,
		"hasPrevPage": page.HasPrevPage,
		"data":        page.Items,
	})
}

// HandleGet handles GET /api/products/{id} requests (public).
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeInternal(w, "failed to load product", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "data": product})
}

// HandleCreate handles POST /api/products requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Product.Apply(body); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	product, err := h.products.Create(r.Context(), userID, productRequest(body))
	if err != nil {
		writeInternal(w, "failed to create product", err, h.dev)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "product created successfully",
		"data":    product,
	})
}

// HandleUpdate handles PUT /api/products/{id} requests (owner or admin).
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	product, status, msg := h.authorizeMutation(r)
	if product == nil {
		writeError(w, status, msg)
		return
	}

	var patch model.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.products.Update(r.Context(), product.ID, patch)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeInternal(w, "failed to update product", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "product updated successfully",
		"data":    updated,
	})
}

// HandleDelete handles DELETE /api/products/{id} requests (owner or admin).
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	product, status, msg := h.authorizeMutation(r)
	if product == nil {
		writeError(w, status, msg)
		return
	}

	if err := h.products.Delete(r.Context(), product.ID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeInternal(w, "failed to delete product", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "product deleted successfully",
	})
}

// HandleMyProducts handles GET /api/products/user/my-products requests.
func (h *ProductHandler) HandleMyProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	products, err := h.products.ListByUser(r.Context(), userID)
	if err != nil {
		writeInternal(w, "failed to list products", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// authorizeMutation loads the target product and checks that the
// requester is its creator or an admin. A nil product means the caller
// must respond with the returned status and message.
func (h *ProductHandler) authorizeMutation(r *http.Request) (*model.Product, int, string) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return nil, http.StatusUnauthorized, "invalid token"
	}

	id, ok := productID(r)
	if !ok {
		return nil, http.StatusNotFound, "product not found"
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		return nil, http.StatusNotFound, "product not found"
	}

	if product.CreatedBy != userID {
		requester, err := h.auth.GetUser(r.Context(), userID)
		if err != nil || requester.Role != model.RoleAdmin {
			return nil, http.StatusForbidden, "insufficient permissions"
		}
	}

	return product, 0, ""
}

func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func filterFromQuery(r *http.Request) repository.Filter {
	q := r.URL.Query()

	f := repository.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
	}
	if v := q.Get("inStock"); v != "" {
		inStock := v == "true"
		f.InStock = &inStock
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		f.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		f.Limit = limit
	}
	return f
}

func productRequest(body map[string]any) model.ProductRequest {
	req := model.ProductRequest{
		Name:        stringField(body, "name"),
		Description: stringField(body, "description"),
		Category:    stringField(body, "category"),
	}
	if price, ok := body["price"].(float64); ok {
		req.Price = &price
	}
	if qty, ok := body["quantity"].(int); ok {
		req.Quantity = &qty
	}
	return req
}

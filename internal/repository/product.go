package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shoplite/shoplite-go/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// Sort keys accepted by product queries.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

const defaultLimit = 10

// Filter narrows and orders a product listing.
type Filter struct {
	Category string
	InStock  *bool
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// Page is one slice of a filtered product listing plus paging metadata.
type Page struct {
	Items       []model.Product
	Total       int
	Page        int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// Products is the product collection contract.
type Products interface {
	List(ctx context.Context, f Filter) (Page, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id int64, patch model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
}

// MemoryProducts is a process-wide, mutex-guarded in-memory product
// collection.
type MemoryProducts struct {
	mu       sync.Mutex
	products map[int64]model.Product
	nextID   int64
}

// NewMemoryProducts creates an empty MemoryProducts.
func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{products: make(map[int64]model.Product)}
}

// List applies filters, then sort, then slices by page and limit.
func (r *MemoryProducts) List(ctx context.Context, f Filter) (Page, error) {
	r.mu.Lock()
	matched := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		matched = append(matched, p)
	}
	r.mu.Unlock()

	sortByID(matched, func(p model.Product) int64 { return p.ID })
	applySort(matched, f.Sort)

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(matched)
	start := (page - 1) * limit
	end := page * limit
	sliceStart, sliceEnd := start, end
	if sliceStart > total {
		sliceStart = total
	}
	if sliceEnd > total {
		sliceEnd = total
	}

	return Page{
		Items:       matched[sliceStart:sliceEnd],
		Total:       total,
		Page:        page,
		TotalPages:  (total + limit - 1) / limit,
		HasNextPage: end < total,
		HasPrevPage: start > 0,
	}, nil
}

// GetByID retrieves a product by id.
func (r *MemoryProducts) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Create inserts a new product with the next monotonic id. InStock is
// derived from Quantity at creation time only.
func (r *MemoryProducts) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	p.InStock = p.Quantity > 0
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	r.products[p.ID] = *p
	return nil
}

// Update merges the non-nil patch fields over the existing record. The
// InStock/Quantity relationship is not re-asserted here; callers may
// desync the pair, matching create-time-only enforcement.
func (r *MemoryProducts) Update(ctx context.Context, id int64, patch model.ProductUpdate) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}

	r.products[id] = p
	return &p, nil
}

// Delete removes a product by id and reports whether one was found.
func (r *MemoryProducts) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// ListByUser returns every product created by the given user, id-ordered.
func (r *MemoryProducts) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Product, 0)
	for _, p := range r.products {
		if p.CreatedBy == userID {
			out = append(out, p)
		}
	}
	sortByID(out, func(p model.Product) int64 { return p.ID })
	return out, nil
}

func matchesSearch(p model.Product, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func applySort(items []model.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	}
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

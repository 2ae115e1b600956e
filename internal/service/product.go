package service

import (
	"context"
	"errors"

	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService handles catalog reads and owner-scoped mutations.
type ProductService struct {
	products repository.Products
}

// NewProductService creates a new ProductService.
func NewProductService(products repository.Products) *ProductService {
	return &ProductService{products: products}
}

// List returns one page of the filtered, sorted catalog.
func (s *ProductService) List(ctx context.Context, f repository.Filter) (repository.Page, error) {
	return s.products.List(ctx, f)
}

// Get retrieves a single product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a product owned by userID. The request is assumed to
// have passed the product ruleset already; InStock is derived from the
// quantity by the repository.
func (s *ProductService) Create(ctx context.Context, userID int64, req model.ProductRequest) (*model.Product, error) {
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		Quantity:    quantity,
		CreatedBy:   userID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update merges the patch over an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, patch model.ProductUpdate) (*model.Product, error) {
	p, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	found, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}

// ListByUser returns every product created by the given user.
func (s *ProductService) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	return s.products.ListByUser(ctx, userID)
}

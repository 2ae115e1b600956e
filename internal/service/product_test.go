package service

import (
	"context"
	"testing"

	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
)

func newTestProductService() *ProductService {
	return NewProductService(repository.NewMemoryProducts())
}

func TestProductCreate_DefaultsQuantity(t *testing.T) {
	svc := newTestProductService()

	price := 9.99
	p, err := svc.Create(context.Background(), 1, model.ProductRequest{
		Name:        "widget",
		Description: "a widget",
		Price:       &price,
		Category:    "other",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if p.Quantity != 0 || p.InStock {
		t.Errorf("missing quantity should default to 0 and out of stock, got qty=%d inStock=%v",
			p.Quantity, p.InStock)
	}
	if p.CreatedBy != 1 {
		t.Errorf("CreatedBy = %d, want 1", p.CreatedBy)
	}
}

func TestProductGet_Missing(t *testing.T) {
	svc := newTestProductService()

	if _, err := svc.Get(context.Background(), 42); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete_Missing(t *testing.T) {
	svc := newTestProductService()

	if err := svc.Delete(context.Background(), 42); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductUpdate_Missing(t *testing.T) {
	svc := newTestProductService()

	if _, err := svc.Update(context.Background(), 42, model.ProductUpdate{}); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

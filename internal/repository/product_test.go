package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shoplite/shoplite-go/internal/model"
)

func newSeededProducts(t *testing.T, n int) *MemoryProducts {
	t.Helper()
	ctx := context.Background()
	repo := NewMemoryProducts()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		p := model.Product{
			Name:        fmt.Sprintf("product-%d", i+1),
			Description: "test product",
			Price:       float64((i + 1) * 100),
			Category:    "electronics",
			Quantity:    i + 1,
			CreatedBy:   1,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(ctx, &p); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}
	return repo
}

func TestListPagination(t *testing.T) {
	repo := newSeededProducts(t, 5)

	page, err := repo.List(context.Background(), Filter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].ID != 3 || page.Items[1].ID != 4 {
		t.Errorf("expected products 3 and 4, got %d and %d", page.Items[0].ID, page.Items[1].ID)
	}
	if page.Total != 5 {
		t.Errorf("Total = %d, want 5", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if !page.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if !page.HasPrevPage {
		t.Error("HasPrevPage = false, want true")
	}
}

func TestListDefaults(t *testing.T) {
	repo := newSeededProducts(t, 5)

	page, err := repo.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("Page = %d, want 1", page.Page)
	}
	if len(page.Items) != 5 {
		t.Errorf("expected all 5 items under default limit, got %d", len(page.Items))
	}
	if page.HasNextPage || page.HasPrevPage {
		t.Error("single page should have neither next nor prev")
	}
}

func TestListSortPrice(t *testing.T) {
	repo := newSeededProducts(t, 3)

	page, err := repo.List(context.Background(), Filter{Sort: SortPriceDesc})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Items[0].Price != 300 || page.Items[2].Price != 100 {
		t.Errorf("unexpected price order: %v, %v, %v",
			page.Items[0].Price, page.Items[1].Price, page.Items[2].Price)
	}

	page, err = repo.List(context.Background(), Filter{Sort: SortPriceAsc})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Items[0].Price != 100 {
		t.Errorf("price_asc first item price = %v, want 100", page.Items[0].Price)
	}
}

func TestListSortCreated(t *testing.T) {
	repo := newSeededProducts(t, 3)

	page, err := repo.List(context.Background(), Filter{Sort: SortNewest})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Items[0].ID != 3 {
		t.Errorf("newest first item id = %d, want 3", page.Items[0].ID)
	}

	page, err = repo.List(context.Background(), Filter{Sort: SortOldest})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Items[0].ID != 1 {
		t.Errorf("oldest first item id = %d, want 1", page.Items[0].ID)
	}
}

func TestListSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProducts()
	for _, p := range []model.Product{
		{Name: "Laptop Pro", Description: "fast machine", Category: "electronics"},
		{Name: "Mug", Description: "holds LAPTOP stickers", Category: "other"},
		{Name: "Chair", Description: "for sitting", Category: "other"},
	} {
		p := p
		if err := repo.Create(ctx, &p); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	page, err := repo.List(ctx, Filter{Search: "laptop"})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("search matched %d, want 2 (name and description, case-insensitive)", page.Total)
	}
}

func TestListFilterInStock(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProducts()
	for _, qty := range []int{0, 5} {
		p := model.Product{Name: "x", Category: "other", Quantity: qty}
		if err := repo.Create(ctx, &p); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	inStock := true
	page, err := repo.List(ctx, Filter{InStock: &inStock})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Total != 1 || !page.Items[0].InStock {
		t.Errorf("expected one in-stock product, got %+v", page.Items)
	}
}

func TestCreateDerivesInStock(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProducts()

	out := model.Product{Name: "out", Category: "other", Quantity: 0}
	if err := repo.Create(ctx, &out); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if out.InStock {
		t.Error("quantity 0 should yield InStock=false")
	}

	in := model.Product{Name: "in", Category: "other", Quantity: 5}
	if err := repo.Create(ctx, &in); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if !in.InStock {
		t.Error("quantity 5 should yield InStock=true")
	}
}

func TestMonotonicIDsAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := newSeededProducts(t, 3)

	if found, _ := repo.Delete(ctx, 3); !found {
		t.Fatal("Delete(3) did not find the record")
	}

	p := model.Product{Name: "new", Category: "other"}
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if p.ID != 4 {
		t.Errorf("id after deleting the max = %d, want 4", p.ID)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newSeededProducts(t, 2)

	for i := 0; i < 2; i++ {
		found, err := repo.Delete(ctx, 99)
		if err != nil {
			t.Fatalf("Delete() unexpected error: %v", err)
		}
		if found {
			t.Errorf("attempt %d: deleting a missing id reported found", i+1)
		}
	}

	page, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("collection size changed to %d", page.Total)
	}
}

func TestUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo := newSeededProducts(t, 1)

	name := "renamed"
	qty := 0
	updated, err := repo.Update(ctx, 1, model.ProductUpdate{Name: &name, Quantity: &qty})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", updated.Name)
	}
	if updated.Description != "test product" {
		t.Errorf("untouched field changed: %q", updated.Description)
	}
	// InStock is only derived at create time; the merge may desync it.
	if updated.Quantity != 0 || !updated.InStock {
		t.Errorf("expected quantity 0 with InStock still true, got qty=%d inStock=%v",
			updated.Quantity, updated.InStock)
	}
}

func TestUpdateMissing(t *testing.T) {
	repo := NewMemoryProducts()
	if _, err := repo.Update(context.Background(), 1, model.ProductUpdate{}); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProducts()
	for _, owner := range []int64{1, 2, 1} {
		p := model.Product{Name: "x", Category: "other", CreatedBy: owner}
		if err := repo.Create(ctx, &p); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	mine, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 products for user 1, got %d", len(mine))
	}
	if mine[0].ID != 1 || mine[1].ID != 3 {
		t.Errorf("unexpected ids: %d, %d", mine[0].ID, mine[1].ID)
	}
}

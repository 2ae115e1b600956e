package repository

import (
	"context"
	"testing"

	"github.com/shoplite/shoplite-go/internal/model"
)

func createUser(t *testing.T, repo *MemoryUsers, username, email string) *model.User {
	t.Helper()
	u := model.User{Username: username, Email: email, PasswordHash: "hash"}
	if err := repo.Create(context.Background(), &u); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	return &u
}

func TestUserCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryUsers()

	a := createUser(t, repo, "first", "first@example.com")
	b := createUser(t, repo, "second", "second@example.com")

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if a.Role != model.RoleUser {
		t.Errorf("default role = %q, want %q", a.Role, model.RoleUser)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := NewMemoryUsers()
	createUser(t, repo, "first", "taken@example.com")

	u := model.User{Username: "other", Email: "taken@example.com"}
	if err := repo.Create(context.Background(), &u); err != ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := NewMemoryUsers()
	createUser(t, repo, "taken", "first@example.com")

	u := model.User{Username: "taken", Email: "other@example.com"}
	if err := repo.Create(context.Background(), &u); err != ErrDuplicateUsername {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	repo := NewMemoryUsers()
	createUser(t, repo, "someone", "someone@example.com")

	u, err := repo.GetByEmail(context.Background(), "someone@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if u.Username != "someone" {
		t.Errorf("Username = %q, want someone", u.Username)
	}

	if _, err := repo.GetByEmail(context.Background(), "missing@example.com"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserListRedactsPasswords(t *testing.T) {
	repo := NewMemoryUsers()
	createUser(t, repo, "a", "a@example.com")
	createUser(t, repo, "b", "b@example.com")

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Errorf("list not id-ordered: %v", list)
	}
}

func TestSeed(t *testing.T) {
	users := NewMemoryUsers()
	products := NewMemoryProducts()

	if err := Seed(context.Background(), users, products); err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}

	admin, err := users.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("admin role = %q, want %q", admin.Role, model.RoleAdmin)
	}
	if admin.PasswordHash == "admin123" {
		t.Error("seed password stored in clear text")
	}

	page, err := products.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("seeded products = %d, want 5", page.Total)
	}

	book, err := products.GetByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if book.InStock {
		t.Error("zero-quantity seed product should be out of stock")
	}
}

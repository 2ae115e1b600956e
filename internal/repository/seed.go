package repository

import (
	"context"
	"time"

	"github.com/shoplite/shoplite-go/internal/crypto"
	"github.com/shoplite/shoplite-go/internal/model"
)

var seedUsers = []struct {
	username string
	email    string
	password string
	role     string
	created  string
}{
	{"admin", "admin@example.com", "admin123", model.RoleAdmin, "2024-01-01T10:00:00Z"},
	{"user1", "user1@example.com", "password123", model.RoleUser, "2024-01-02T11:30:00Z"},
	{"user2", "user2@example.com", "password456", model.RoleUser, "2024-01-03T14:20:00Z"},
}

var seedProducts = []model.Product{
	{Name: "Dell XPS 13 Laptop", Description: "Powerful 13-inch ultrabook", Price: 45000, Category: "electronics", Quantity: 15, CreatedBy: 1, CreatedAt: mustParse("2024-01-05T09:00:00Z")},
	{Name: "iPhone 15 Smartphone", Description: "Apple's flagship smartphone", Price: 55000, Category: "electronics", Quantity: 25, CreatedBy: 2, CreatedAt: mustParse("2024-01-06T10:30:00Z")},
	{Name: "Black T-Shirt", Description: "Classic-cut cotton t-shirt", Price: 800, Category: "clothing", Quantity: 50, CreatedBy: 1, CreatedAt: mustParse("2024-01-07T11:45:00Z")},
	{Name: "JavaScript for Beginners", Description: "A complete guide to learning JavaScript", Price: 600, Category: "books", Quantity: 0, CreatedBy: 3, CreatedAt: mustParse("2024-01-08T14:20:00Z")},
	{Name: "Sony WH-1000XM4 Headphones", Description: "Wireless noise-cancelling headphones", Price: 12000, Category: "electronics", Quantity: 8, CreatedBy: 2, CreatedAt: mustParse("2024-01-09T16:10:00Z")},
}

// Seed loads the demo users and products into the given repositories.
// Passwords are hashed at seed time; nothing is stored in clear text.
func Seed(ctx context.Context, users *MemoryUsers, products *MemoryProducts) error {
	for _, s := range seedUsers {
		hash, err := crypto.HashPassword(s.password)
		if err != nil {
			return err
		}
		u := model.User{
			Username:     s.username,
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
			CreatedAt:    mustParse(s.created),
		}
		if err := users.Create(ctx, &u); err != nil {
			return err
		}
	}

	for _, p := range seedProducts {
		p := p
		if err := products.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

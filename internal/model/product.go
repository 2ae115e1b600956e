package model

import "time"

// Product categories accepted by the API.
var Categories = []string{"electronics", "clothing", "books", "food", "other"}

// Product represents a catalog entry owned by the user who created it.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	Quantity    int       `json:"quantity"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductRequest represents a product create request body.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Quantity    *int     `json:"quantity"`
}

// ProductUpdate represents a partial product update. Nil fields are left
// untouched by the merge.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
	Quantity    *int     `json:"quantity"`
}

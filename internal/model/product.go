package model

import "time"

// Product represents a row in the products table. Products have no ownership
// relation to users.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductRequest represents a product create or update request.
type ProductRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

package models

import "time"

// Product is the model for the 'products' table.
// Pointers for nullable columns so JSON serialization stays clean.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	CategoryID  *int64  `json:"categoryId,omitempty" db:"category_id"`
	Rating      float64 `json:"rating" db:"rating"`
	Stock       int     `json:"stock" db:"stock"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Join (not in the products table, populated manually)
	CategoryName string `json:"categoryName,omitempty" db:"-"`
}

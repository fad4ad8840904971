package models

// Category defines the struct for the 'categories' table
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// CreateCategoryInput is the JSON body for POST /categories
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

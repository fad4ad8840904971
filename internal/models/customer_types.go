package models

import "time"

// Customer is the model for the 'customers' table.
// A customer is created lazily at checkout when the email is new.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"` // Optional link to a registered user
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateCustomerInput is the JSON body for POST /customers
type CreateCustomerInput struct {
	UserID  *int64 `json:"user_id"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

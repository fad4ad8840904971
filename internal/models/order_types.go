package models

import "time"

// Order status values. Transitions past 'pending' are a manual concern for
// now; nothing in the API moves an order forward automatically.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is the model for the 'orders' table
type Order struct {
	ID          int64     `json:"id" db:"id"`
	CustomerID  int64     `json:"customerId" db:"customer_id"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Join (populated manually by the order detail handler)
	Items []OrderItem `json:"items,omitempty" db:"-"`
}

// OrderItem is the model for the 'order_items' table
type OrderItem struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"orderId" db:"order_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"` // Price at the time of purchase
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

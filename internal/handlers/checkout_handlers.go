package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/middleware"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//
// --- Checkout Handler ---
//

// CheckoutCustomerInput is the customer block of the checkout body.
type CheckoutCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

// CheckoutItemInput is one line of the checkout body. Price is the
// caller-supplied snapshot; it is stored on the order item as-is so later
// catalog price changes never rewrite order history.
type CheckoutItemInput struct {
	ProductID int64   `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// CheckoutInput defines the JSON for POST /checkout
type CheckoutInput struct {
	Customer CheckoutCustomerInput `json:"customer" binding:"required"`
	Items    []CheckoutItemInput   `json:"items" binding:"required,min=1,dive"`
}

// orderTotal sums price x quantity over the items with exact decimal
// arithmetic, so 2 x 999.99 + 19.99 comes out as 2019.97 and not a float
// artifact.
func orderTotal(items []CheckoutItemInput) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// Checkout is the handler for POST /checkout
// The whole flow (customer upsert, stock check, order + items insert, stock
// decrement) runs in one transaction: a failure anywhere leaves no partial
// order and no stock mutation.
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.DB.BeginTx(c, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	// 1. --- Resolve or Create the Customer (keyed by email) ---
	customerID, err := h.getOrCreateCustomerID(tx, input.Customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve customer"})
		return
	}

	// 2. --- Validate Stock (locking the product rows) ---
	// All shortages are collected so the response can name every offending
	// product, and no partial order is ever created.
	var insufficient []string
	for _, item := range input.Items {
		var stock int
		err := tx.QueryRow("SELECT stock FROM products WHERE id = ? FOR UPDATE", item.ProductID).Scan(&stock)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %d not found", item.ProductID)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product stock"})
			return
		}
		if stock < item.Quantity {
			insufficient = append(insufficient, fmt.Sprintf("%d", item.ProductID))
		}
	}
	if len(insufficient) > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock for product(s): " + strings.Join(insufficient, ", "),
		})
		return
	}

	// 3. --- Compute Total ---
	totalAmount := orderTotal(input.Items)

	// 4. --- Insert the Order ---
	orderQuery := `
		INSERT INTO orders (customer_id, total_amount, status, created_at)
		VALUES (?, ?, ?, ?)`
	result, err := tx.Exec(orderQuery, customerID, totalAmount, models.OrderStatusPending, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new order ID"})
		return
	}

	// 5. --- Insert Order Items & 6. --- Decrement Stock ---
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?)`

	// Conditional decrement: the rows are already locked above, but the
	// stock >= ? guard means the column can never go negative even if the
	// validation and decrement ever drift apart.
	stockQuery := "UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?"

	now := time.Now()
	for _, item := range input.Items {
		if _, err := tx.Exec(itemQuery, orderID, item.ProductID, item.Quantity, item.Price, now); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order item"})
			return
		}

		res, err := tx.Exec(stockQuery, item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deduct stock"})
			return
		}
		affected, err := res.RowsAffected()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stock update"})
			return
		}
		if affected == 0 {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Insufficient stock for product(s): %d", item.ProductID),
			})
			return
		}
	}

	// 7. --- Commit ---
	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	// The cart snapshot has been converted into an order; drop it.
	h.Carts.Clear(middleware.SessionID(c))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

// getOrCreateCustomerID finds a customer by email or creates one from the
// checkout details. Helper for use within the checkout transaction.
func (h *Handlers) getOrCreateCustomerID(tx *sql.Tx, input CheckoutCustomerInput) (int64, error) {
	var customerID int64

	err := tx.QueryRow("SELECT id FROM customers WHERE email = ?", input.Email).Scan(&customerID)
	if err == nil {
		return customerID, nil // Found it
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	insertQuery := `INSERT INTO customers (name, email, address, created_at) VALUES (?, ?, ?, ?)`
	result, err := tx.Exec(insertQuery, input.Name, input.Email, input.Address, time.Now())
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

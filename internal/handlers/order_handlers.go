package handlers

import (
	"database/sql"
	"net/http"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
	"github.com/gin-gonic/gin"
)

// GetOrder is the handler for GET /orders/:id
// It backs the order confirmation view after a successful checkout.
func (h *Handlers) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	err := h.DB.QueryRow(`
		SELECT id, customer_id, total_amount, status, created_at
		FROM orders WHERE id = ?`, orderID).Scan(
		&order.ID,
		&order.CustomerID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items WHERE order_id = ?`, order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query order items"})
		return
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order item"})
			return
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating order items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

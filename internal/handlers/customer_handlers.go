package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
	"github.com/gin-gonic/gin"
)

// GetCustomers is the handler for GET /customers
func (h *Handlers) GetCustomers(c *gin.Context) {
	query := `SELECT id, user_id, name, email, address, created_at FROM customers ORDER BY id ASC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.UserID,
			&customer.Name,
			&customer.Email,
			&customer.Address,
			&customer.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan customer row"})
			return
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating customer rows"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// CreateCustomer is the handler for POST /customers
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var input models.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Email is unique; check first so the caller gets a clear conflict
	// instead of a raw driver error.
	var existingID int64
	err := h.DB.QueryRow("SELECT id FROM customers WHERE email = ?", input.Email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A customer with this email already exists"})
		return
	}
	if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	query := `INSERT INTO customers (user_id, name, email, address, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := h.DB.Exec(query, input.UserID, input.Name, input.Email, input.Address, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer created"})
}

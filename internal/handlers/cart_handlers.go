package handlers

import (
	"net/http"
	"strconv"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/middleware"
	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers ---
//
// The cart lives in process memory, keyed by the session cookie. Nothing
// here touches the database; stock is only checked at checkout.
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// AddToCart is the handler for POST /cart
func (h *Handlers) AddToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.Carts.Add(sessionID, input.ProductID, input.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
		"cart":    h.Carts.Get(sessionID),
	})
}

// GetCart is the handler for GET /cart
func (h *Handlers) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"cart": h.Carts.Get(sessionID),
	})
}

// ClearCart is the handler for DELETE /cart
func (h *Handlers) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.Carts.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// RemoveCartItem is the handler for DELETE /cart/items/:product_id
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if _, ok := h.Carts.Get(sessionID)[productID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	h.Carts.Remove(sessionID, productID)
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

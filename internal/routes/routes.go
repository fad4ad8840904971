package routes

import (
	"net/http"
	"os"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/handlers"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CORSMiddleware tells the browser the frontend origin may talk to us.
// Credentials are allowed because the cart session rides on a cookie.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000" // Next.js dev server
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint. The rate limiter guards the mutating
// routes only; reads stay cheap and unthrottled.
func SetupRouter(h *handlers.Handlers, rdb *redis.Client) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())
	router.Use(middleware.Session())

	limited := middleware.RateLimiter(rdb)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Catalog ---
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)
	router.POST("/products", limited, h.CreateProduct)
	router.GET("/categories", h.GetAllCategories)
	router.POST("/categories", limited, h.CreateCategory)

	// --- Cart ---
	router.GET("/cart", h.GetCart)
	router.POST("/cart", h.AddToCart)
	router.DELETE("/cart", h.ClearCart)
	router.DELETE("/cart/items/:product_id", h.RemoveCartItem)

	// --- Checkout & Orders ---
	router.POST("/checkout", limited, h.Checkout)
	router.GET("/orders/:id", h.GetOrder)

	// --- Customers ---
	router.GET("/customers", h.GetCustomers)
	router.POST("/customers", limited, h.CreateCustomer)

	return router
}

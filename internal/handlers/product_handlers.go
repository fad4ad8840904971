package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// productFilter holds the (all optional, AND'ed) catalog filters plus
// pagination. Nil pointer means the filter was not supplied.
type productFilter struct {
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	Search     string
	Page       int
	Limit      int
}

// parseProductFilter reads the query string into a productFilter.
// Invalid or non-numeric values are treated as absent, never as a 400.
func parseProductFilter(c *gin.Context) productFilter {
	f := productFilter{Page: defaultPage, Limit: defaultLimit}

	if v, err := strconv.ParseInt(c.Query("category"), 10, 64); err == nil {
		f.CategoryID = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		f.MinRating = &v
	}
	f.Search = c.Query("search")

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		f.Limit = v
	}

	return f
}

// buildProductListQuery turns a filter into the SELECT statement and its
// args. ORDER BY id keeps pagination windows stable across requests.
func buildProductListQuery(f productFilter) (string, []interface{}) {
	var queryBuilder strings.Builder
	var args []interface{}

	queryBuilder.WriteString(`
        SELECT
            p.id, p.name, p.description, p.price, p.category_id,
            p.rating, p.stock, p.created_at, c.name
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id
        WHERE 1=1
    `)

	if f.CategoryID != nil {
		queryBuilder.WriteString(" AND p.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.MinPrice != nil {
		queryBuilder.WriteString(" AND p.price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		queryBuilder.WriteString(" AND p.price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.MinRating != nil {
		queryBuilder.WriteString(" AND p.rating >= ?")
		args = append(args, *f.MinRating)
	}
	if f.Search != "" {
		queryBuilder.WriteString(" AND LOWER(p.name) LIKE LOWER(?)")
		args = append(args, "%"+f.Search+"%")
	}

	queryBuilder.WriteString(" ORDER BY p.id ASC LIMIT ? OFFSET ?")
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	return queryBuilder.String(), args
}

// ListProducts is the handler for GET /products
func (h *Handlers) ListProducts(c *gin.Context) {
	filter := parseProductFilter(c)
	query, args := buildProductListQuery(filter)

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	products := []*models.Product{} // [] in JSON instead of null

	for rows.Next() {
		var product models.Product
		var categoryName sql.NullString

		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.CategoryID,
			&product.Rating,
			&product.Stock,
			&product.CreatedAt,
			&categoryName,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row"})
			return
		}

		product.CategoryName = categoryName.String
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct is the handler for GET /products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	query := `
		SELECT
			p.id, p.name, p.description, p.price, p.category_id,
			p.rating, p.stock, p.created_at, c.name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = ?`

	var product models.Product
	var categoryName sql.NullString

	err := h.DB.QueryRow(query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.Rating,
		&product.Stock,
		&product.CreatedAt,
		&categoryName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	product.CategoryName = categoryName.String
	c.JSON(http.StatusOK, product)
}

// CreateProductInput is the JSON body for POST /products (catalog seeding)
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	CategoryID  *int64  `json:"categoryId"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// CreateProduct is the handler for POST /products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CategoryID != nil {
		var exists int
		err := h.DB.QueryRow("SELECT 1 FROM categories WHERE id = ?", *input.CategoryID).Scan(&exists)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	query := `
		INSERT INTO products (name, description, price, category_id, rating, stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		input.Name, input.Description, input.Price,
		input.CategoryID, input.Rating, input.Stock, time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert product"})
		return
	}

	productID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ID"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "productId": productID})
}

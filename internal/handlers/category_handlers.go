package handlers

import (
	"net/http"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// GetAllCategories is the handler for GET /categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	rows, err := h.DB.Query("SELECT id, name, slug FROM categories ORDER BY name ASC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan category row"})
			return
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating category rows"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory is the handler for POST /categories (catalog seeding)
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catSlug := slug.Make(input.Name)

	res, err := h.DB.Exec(`INSERT INTO categories (name, slug) VALUES (?, ?)`, input.Name, catSlug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	id, _ := res.LastInsertId()

	// Return the full object so the UI can update immediately
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created",
		"category": models.Category{ID: id, Name: input.Name, Slug: catSlug},
	})
}

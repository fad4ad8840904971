package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// filterContext builds a gin.Context carrying the given query string.
func filterContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products?"+rawQuery, nil)
	return c
}

func TestParseProductFilterDefaults(t *testing.T) {
	f := parseProductFilter(filterContext(t, ""))

	assert.Nil(t, f.CategoryID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinRating)
	assert.Empty(t, f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestParseProductFilterAllSupplied(t *testing.T) {
	f := parseProductFilter(filterContext(t,
		"category=3&minPrice=10.5&maxPrice=99.99&minRating=4&search=lamp&page=2&limit=5"))

	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(3), *f.CategoryID)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 10.5, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 99.99, *f.MaxPrice)
	require.NotNil(t, f.MinRating)
	assert.Equal(t, 4.0, *f.MinRating)
	assert.Equal(t, "lamp", f.Search)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 5, f.Limit)
}

func TestParseProductFilterInvalidValuesTreatedAsAbsent(t *testing.T) {
	f := parseProductFilter(filterContext(t,
		"category=abc&minPrice=cheap&maxPrice=&minRating=high&page=zero&limit=-5"))

	assert.Nil(t, f.CategoryID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinRating)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestBuildProductListQueryNoFilters(t *testing.T) {
	query, args := buildProductListQuery(productFilter{Page: 1, Limit: 10})

	assert.NotContains(t, query, "p.category_id = ?")
	assert.NotContains(t, query, "p.price >=")
	assert.NotContains(t, query, "LIKE")
	assert.Contains(t, query, "ORDER BY p.id ASC LIMIT ? OFFSET ?")
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildProductListQueryConjunction(t *testing.T) {
	catID := int64(2)
	minPrice, maxPrice, minRating := 5.0, 50.0, 3.5

	query, args := buildProductListQuery(productFilter{
		CategoryID: &catID,
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		MinRating:  &minRating,
		Search:     "desk",
		Page:       1,
		Limit:      10,
	})

	// Every supplied predicate must appear (AND'ed, not OR'ed).
	assert.Contains(t, query, "AND p.category_id = ?")
	assert.Contains(t, query, "AND p.price >= ?")
	assert.Contains(t, query, "AND p.price <= ?")
	assert.Contains(t, query, "AND p.rating >= ?")
	assert.Contains(t, query, "AND LOWER(p.name) LIKE LOWER(?)")
	assert.NotContains(t, query, " OR ")

	assert.Equal(t, []interface{}{catID, minPrice, maxPrice, minRating, "%desk%", 10, 0}, args)
}

func TestBuildProductListQueryPaginationOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"third page small limit", 3, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args := buildProductListQuery(productFilter{Page: tt.page, Limit: tt.limit})
			require.Len(t, args, 2)
			assert.Equal(t, tt.limit, args[0])
			assert.Equal(t, tt.wantOffset, args[1])
		})
	}
}

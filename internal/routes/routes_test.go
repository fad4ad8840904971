package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/cart"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	// No DB and no Redis: the routes under test never reach either.
	h := &handlers.Handlers{Carts: cart.NewStore()}
	return SetupRouter(h, nil)
}

func TestPing(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong!"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("OPTIONS", "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSHeadersOnNormalRequest(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/cart"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartRouter builds a router with just the cart surface. The cart handlers
// never touch the database, so no DB is wired up.
func cartRouter() *gin.Engine {
	h := &Handlers{Carts: cart.NewStore()}

	router := gin.New()
	router.Use(middleware.Session())
	router.GET("/cart", h.GetCart)
	router.POST("/cart", h.AddToCart)
	router.DELETE("/cart", h.ClearCart)
	router.DELETE("/cart/items/:product_id", h.RemoveCartItem)
	return router
}

// doCart sends one request with a fixed session cookie and decodes the
// JSON response.
func doCart(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "test-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func cartMapping(t *testing.T, raw json.RawMessage) map[string]int {
	t.Helper()
	var m map[string]int
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestCartRoundTrip(t *testing.T) {
	router := cartRouter()

	// add(1, 2) then add(1, 3) accumulates to {1: 5}
	code, resp := doCart(t, router, "POST", "/cart", `{"productId": 1, "quantity": 2}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, map[string]int{"1": 2}, cartMapping(t, resp["cart"]))

	code, resp = doCart(t, router, "POST", "/cart", `{"productId": 1, "quantity": 3}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, map[string]int{"1": 5}, cartMapping(t, resp["cart"]))

	code, resp = doCart(t, router, "GET", "/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]int{"1": 5}, cartMapping(t, resp["cart"]))

	// remove(1) empties the mapping
	code, _ = doCart(t, router, "DELETE", "/cart/items/1", "")
	assert.Equal(t, http.StatusOK, code)

	code, resp = doCart(t, router, "GET", "/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, cartMapping(t, resp["cart"]))
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	router := cartRouter()

	code, resp := doCart(t, router, "POST", "/cart", `{"productId": 1, "quantity": 0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, resp["error"])

	code, resp = doCart(t, router, "POST", "/cart", `{"productId": 1, "quantity": -4}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, resp["error"])

	// Nothing accumulated.
	code, resp = doCart(t, router, "GET", "/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, cartMapping(t, resp["cart"]))
}

func TestAddToCartRejectsMalformedBody(t *testing.T) {
	router := cartRouter()

	code, resp := doCart(t, router, "POST", "/cart", `{"quantity": 2}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, resp["error"])
}

func TestClearCart(t *testing.T) {
	router := cartRouter()

	doCart(t, router, "POST", "/cart", `{"productId": 1, "quantity": 2}`)
	doCart(t, router, "POST", "/cart", `{"productId": 2, "quantity": 1}`)

	code, _ := doCart(t, router, "DELETE", "/cart", "")
	assert.Equal(t, http.StatusOK, code)

	code, resp := doCart(t, router, "GET", "/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, cartMapping(t, resp["cart"]))
}

func TestRemoveCartItemNotFound(t *testing.T) {
	router := cartRouter()

	code, resp := doCart(t, router, "DELETE", "/cart/items/99", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, resp["error"])
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	router := cartRouter()

	// No cookie sent: the middleware must issue one.
	req := httptest.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "cart_session" && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a cart_session cookie to be set")
}

func TestCartsAreSessionScoped(t *testing.T) {
	router := cartRouter()

	send := func(session, method, path, body string) map[string]json.RawMessage {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: session})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	send("alice", "POST", "/cart", `{"productId": 1, "quantity": 2}`)
	send("bob", "POST", "/cart", `{"productId": 1, "quantity": 9}`)

	aliceCart := cartMapping(t, send("alice", "GET", "/cart", "")["cart"])
	bobCart := cartMapping(t, send("bob", "GET", "/cart", "")["cart"])

	assert.Equal(t, map[string]int{"1": 2}, aliceCart)
	assert.Equal(t, map[string]int{"1": 9}, bobCart)
}

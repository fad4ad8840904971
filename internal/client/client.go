// Package client is the Go counterpart of the web storefront: a thin API
// client plus the per-view state machines the UI renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
)

// APIError carries the server-supplied message for 4xx/5xx responses, so
// views can render it instead of a generic failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Client talks to the Mini E-Commerce API. The cookie jar keeps the cart
// session cookie across calls, so one Client is one shopper.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (no trailing slash).
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

// ProductFilter mirrors the catalog query parameters. Zero values mean
// "not supplied".
type ProductFilter struct {
	CategoryID int64
	MinPrice   float64
	MaxPrice   float64
	MinRating  float64
	Search     string
}

func (f ProductFilter) query(page, limit int) url.Values {
	q := url.Values{}
	if f.CategoryID > 0 {
		q.Set("category", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.MinRating > 0 {
		q.Set("minRating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// do issues the request and decodes the JSON body into out (when non-nil).
// Non-2xx responses become an *APIError with the server's message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListProducts fetches one catalog page under the given filter.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, error) {
	var products []models.Product
	path := "/products?" + filter.query(page, limit).Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

type cartEnvelope struct {
	Cart map[int64]int `json:"cart"`
}

// AddToCart adds quantity of a product to this shopper's cart and returns
// the updated cart mapping.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (map[int64]int, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var env cartEnvelope
	if err := c.do(ctx, http.MethodPost, "/cart", body, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// GetCart returns this shopper's cart mapping (productID -> quantity).
func (c *Client) GetCart(ctx context.Context) (map[int64]int, error) {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// RemoveCartItem drops one product from the cart entirely.
func (c *Client) RemoveCartItem(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil, nil)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

// CheckoutCustomer is the customer details block of a checkout submission.
type CheckoutCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CheckoutItem is one checkout line. Price is the snapshot shown to the
// shopper at the time of submission.
type CheckoutItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Checkout submits the order and returns the new order's id on success.
func (c *Client) Checkout(ctx context.Context, customer CheckoutCustomer, items []CheckoutItem) (int64, error) {
	body := map[string]interface{}{"customer": customer, "items": items}
	var resp struct {
		OrderID int64 `json:"orderId"`
	}
	if err := c.do(ctx, http.MethodPost, "/checkout", body, &resp); err != nil {
		return 0, err
	}
	return resp.OrderID, nil
}

// GetOrder fetches the order confirmation data by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var env struct {
		Order models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

package client

import (
	"context"
	"errors"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/models"
)

// ViewState is the lifecycle of a data-backed view:
// Idle -> Loading -> (Loaded | Errored). Any refetch goes back to Loading.
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// genericErrorMessage is shown when the server is unreachable or gave no
// usable message. Network failures render the same as a 5xx.
const genericErrorMessage = "Something went wrong. Please try again."

// errorMessage extracts the renderable text for an error state.
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericErrorMessage
}

// view is the shared state-machine core embedded by the concrete views.
type view struct {
	state  ViewState
	errMsg string
}

func (v *view) State() ViewState { return v.state }
func (v *view) ErrMsg() string   { return v.errMsg }

// run drives one fetch cycle through the state machine.
func (v *view) run(fetch func() error) {
	v.state = StateLoading
	v.errMsg = ""

	if err := fetch(); err != nil {
		v.state = StateErrored
		v.errMsg = errorMessage(err)
		return
	}
	v.state = StateLoaded
}

// CatalogView drives the product listing page: current filter, current page
// and the fetched window of products.
type CatalogView struct {
	view

	client *Client

	Filter ProductFilter
	Page   int
	Limit  int

	products []models.Product
}

// NewCatalogView creates an idle catalog view with default pagination.
func NewCatalogView(c *Client) *CatalogView {
	return &CatalogView{client: c, Page: 1, Limit: 10}
}

// Products returns the currently loaded window. Only meaningful in
// StateLoaded.
func (v *CatalogView) Products() []models.Product { return v.products }

// Reload refetches the catalog with the current filter and page.
func (v *CatalogView) Reload(ctx context.Context) {
	v.run(func() error {
		products, err := v.client.ListProducts(ctx, v.Filter, v.Page, v.Limit)
		if err != nil {
			return err
		}
		v.products = products
		return nil
	})
}

// SetPage changes the page and refetches.
func (v *CatalogView) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	v.Page = page
	v.Reload(ctx)
}

// SetFilter swaps the filter, resets to the first page and refetches.
func (v *CatalogView) SetFilter(ctx context.Context, f ProductFilter) {
	v.Filter = f
	v.Page = 1
	v.Reload(ctx)
}

// OrderConfirmationView drives the post-checkout confirmation page, keyed
// by the order id the checkout returned.
type OrderConfirmationView struct {
	view

	client  *Client
	OrderID int64

	order *models.Order
}

// NewOrderConfirmationView creates an idle confirmation view for an order.
func NewOrderConfirmationView(c *Client, orderID int64) *OrderConfirmationView {
	return &OrderConfirmationView{client: c, OrderID: orderID}
}

// Order returns the loaded order. Only meaningful in StateLoaded.
func (v *OrderConfirmationView) Order() *models.Order { return v.order }

// Reload fetches the order.
func (v *OrderConfirmationView) Reload(ctx context.Context) {
	v.run(func() error {
		order, err := v.client.GetOrder(ctx, v.OrderID)
		if err != nil {
			return err
		}
		v.order = order
		return nil
	})
}

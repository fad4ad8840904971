// Command shop walks the full storefront flow against a running API:
// browse the catalog, fill a cart, check out, and show the confirmation.
// Useful as a smoke test for a fresh deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	search := flag.String("search", "", "catalog search term")
	flag.Parse()

	ctx := context.Background()
	c := client.New(*baseURL)

	// 1. Browse the catalog
	catalog := client.NewCatalogView(c)
	catalog.SetFilter(ctx, client.ProductFilter{Search: *search})
	if catalog.State() == client.StateErrored {
		log.Fatalf("catalog: %s", catalog.ErrMsg())
	}

	products := catalog.Products()
	if len(products) == 0 {
		log.Fatal("catalog is empty; seed some products first (see schema.sql)")
	}
	fmt.Printf("Catalog page %d (%d products):\n", catalog.Page, len(products))
	for _, p := range products {
		fmt.Printf("  #%d %-30s $%.2f  stock=%d rating=%.1f\n", p.ID, p.Name, p.Price, p.Stock, p.Rating)
	}

	// 2. Add the first product to the cart
	first := products[0]
	cart, err := c.AddToCart(ctx, first.ID, 1)
	if err != nil {
		log.Fatalf("add to cart: %v", err)
	}
	fmt.Printf("\nCart: %v\n", cart)

	// 3. Check out
	orderID, err := c.Checkout(ctx,
		client.CheckoutCustomer{
			Name:    "Smoke Test",
			Email:   "smoke-test@example.com",
			Address: "1 Test Lane",
		},
		[]client.CheckoutItem{
			{ProductID: first.ID, Quantity: 1, Price: first.Price},
		},
	)
	if err != nil {
		log.Fatalf("checkout: %v", err)
	}

	// 4. Confirmation view
	confirmation := client.NewOrderConfirmationView(c, orderID)
	confirmation.Reload(ctx)
	if confirmation.State() == client.StateErrored {
		log.Fatalf("confirmation: %s", confirmation.ErrMsg())
	}

	order := confirmation.Order()
	fmt.Printf("\nOrder #%d placed: status=%s total=$%.2f items=%d\n",
		order.ID, order.Status, order.TotalAmount, len(order.Items))
}

package handlers

import (
	"database/sql"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/cart"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB    *sql.DB     // Primary connection pool
	Carts *cart.Store // In-memory per-session carts
}

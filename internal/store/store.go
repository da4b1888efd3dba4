// Package store persists the catalog, cart, and order collections as flat
// JSON files. Each collection is read and written wholesale; an absent file
// is equivalent to an empty collection. Each store is defined as a narrow
// interface so the file-backed implementations can later be swapped for
// transactional ones without touching the dispatch loop.
package store

import (
	"context"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

// Catalog is the read-only product store.
type Catalog interface {
	// Search filters products by a case-insensitive substring match on name
	// or description, a case-insensitive exact category match, and inclusive
	// price bounds. Empty or nil filters match everything. Results keep
	// storage order; no match is an empty slice, not an error.
	Search(ctx context.Context, query, category string, minPrice, maxPrice *float64) ([]domain.Product, error)

	// GetByID returns the product with the given ID, or nil if absent.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// CheckAvailability reports whether the product has at least quantity
	// units in stock. An absent product is reported as unavailable.
	CheckAvailability(ctx context.Context, id string, quantity int) (Availability, error)
}

// Carts manages the single active cart per user.
type Carts interface {
	// Load returns the stored cart for userID, or an empty cart if none is
	// stored or the stored cart belongs to a different user.
	Load(ctx context.Context, userID string) (*domain.Cart, error)

	// Add puts quantity units of a product into the cart, merging with an
	// existing line and keeping its originally captured price.
	Add(ctx context.Context, productID string, quantity int, userID string) (Result, error)

	// Remove deletes a product line from the cart.
	Remove(ctx context.Context, productID, userID string) (Result, error)

	// UpdateQuantity overwrites a line's quantity. A quantity of zero or
	// less removes the line.
	UpdateQuantity(ctx context.Context, productID string, quantity int, userID string) (Result, error)

	// View joins the cart with the live catalog for display. Lines whose
	// product has vanished from the catalog are dropped from the view.
	View(ctx context.Context, userID string) (CartView, error)

	// Clear persists an empty cart for the user.
	Clear(ctx context.Context, userID string) (Result, error)

	// Checkout re-validates every line against current stock, creates a
	// pending order from a snapshot of the cart, and clears the cart. The
	// whole checkout aborts on the first unavailable line.
	Checkout(ctx context.Context, userID string) (CheckoutResult, error)
}

// Orders manages the append-only order collection.
type Orders interface {
	// Append adds an order to the collection.
	Append(ctx context.Context, order domain.Order) error

	// GetByUser returns all orders for a user in arrival order.
	GetByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// Track returns the status of an order, or nil if the ID is unknown.
	Track(ctx context.Context, orderID string) (*OrderStatus, error)

	// History returns a user's orders newest first, truncated to limit.
	History(ctx context.Context, userID string, limit int) ([]domain.Order, error)
}

// Availability reports stock for a requested quantity.
type Availability struct {
	Available bool   `json:"available"`
	Stock     int    `json:"stock"`
	Requested int    `json:"requested"`
	Message   string `json:"message"`
}

// Result is the outcome of a cart mutation. Validation failures come back
// as Success=false with a human-readable message, not as errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CartLine is one row of a cart view, joined with the live catalog name.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"item_total"`
}

// CartView is the displayable contents of a cart.
type CartView struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// CheckoutResult reports the outcome of a checkout attempt.
type CheckoutResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	OrderID string  `json:"order_id,omitempty"`
	Total   float64 `json:"total,omitempty"`
}

// OrderStatus is a tracked order augmented with a delivery estimate derived
// from its status.
type OrderStatus struct {
	OrderID           string             `json:"order_id"`
	Status            string             `json:"status"`
	CreatedAt         string             `json:"created_at"`
	Total             float64            `json:"total"`
	Items             []domain.OrderItem `json:"items"`
	EstimatedDelivery string             `json:"estimated_delivery"`
}

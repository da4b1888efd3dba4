package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

// JSONCarts stores a single active cart in one JSON file. The file holds
// exactly one cart at a time; loading for a different user yields a fresh
// empty cart for that user. Checkout appends the resulting order through
// the Orders store.
type JSONCarts struct {
	path    string
	catalog Catalog
	orders  Orders
}

// NewJSONCarts creates a cart store backed by the file at path. The catalog
// validates product existence and stock; orders receives checkout results.
func NewJSONCarts(path string, catalog Catalog, orders Orders) *JSONCarts {
	return &JSONCarts{path: path, catalog: catalog, orders: orders}
}

var _ Carts = (*JSONCarts)(nil)

// Load implements Carts.
func (s *JSONCarts) Load(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	found, err := readJSONFile(s.path, &cart)
	if err != nil {
		return nil, err
	}
	if !found || cart.UserID != userID {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	return &cart, nil
}

func (s *JSONCarts) save(cart *domain.Cart) error {
	return writeJSONFile(s.path, cart)
}

// Add implements Carts.
func (s *JSONCarts) Add(ctx context.Context, productID string, quantity int, userID string) (Result, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return Result{}, err
	}
	if product == nil {
		return Result{Success: false, Message: "Product not found"}, nil
	}

	availability, err := s.catalog.CheckAvailability(ctx, productID, quantity)
	if err != nil {
		return Result{}, err
	}
	if !availability.Available {
		return Result{Success: false, Message: availability.Message}, nil
	}

	cart, err := s.Load(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	if existing := cart.Find(productID); existing != nil {
		merged := existing.Quantity + quantity
		availability, err = s.catalog.CheckAvailability(ctx, productID, merged)
		if err != nil {
			return Result{}, err
		}
		if !availability.Available {
			return Result{
				Success: false,
				Message: fmt.Sprintf("Cannot add %d more. %s", quantity, availability.Message),
			}, nil
		}
		existing.Quantity = merged
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	if err := s.save(cart); err != nil {
		return Result{}, err
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Added %d x %s to cart", quantity, product.Name),
	}, nil
}

// Remove implements Carts.
func (s *JSONCarts) Remove(ctx context.Context, productID, userID string) (Result, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if !cart.Remove(productID) {
		return Result{Success: false, Message: "Product not found in cart"}, nil
	}
	if err := s.save(cart); err != nil {
		return Result{}, err
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Removed %s from cart", s.displayName(ctx, productID)),
	}, nil
}

// UpdateQuantity implements Carts.
func (s *JSONCarts) UpdateQuantity(ctx context.Context, productID string, quantity int, userID string) (Result, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID, userID)
	}

	availability, err := s.catalog.CheckAvailability(ctx, productID, quantity)
	if err != nil {
		return Result{}, err
	}
	if !availability.Available {
		return Result{Success: false, Message: availability.Message}, nil
	}

	cart, err := s.Load(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	item := cart.Find(productID)
	if item == nil {
		return Result{Success: false, Message: "Product not found in cart"}, nil
	}
	item.Quantity = quantity
	if err := s.save(cart); err != nil {
		return Result{}, err
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Updated %s quantity to %d", s.displayName(ctx, productID), quantity),
	}, nil
}

// View implements Carts.
func (s *JSONCarts) View(ctx context.Context, userID string) (CartView, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Items: []CartLine{}}
	for _, item := range cart.Items {
		product, err := s.catalog.GetByID(ctx, item.ProductID)
		if err != nil {
			return CartView{}, err
		}
		if product == nil {
			// Product vanished from the catalog since it was added.
			continue
		}
		itemTotal := item.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ItemTotal: itemTotal,
		})
		view.Total += itemTotal
	}
	view.ItemCount = len(view.Items)
	return view, nil
}

// Clear implements Carts.
func (s *JSONCarts) Clear(ctx context.Context, userID string) (Result, error) {
	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	if err := s.save(cart); err != nil {
		return Result{}, err
	}
	return Result{Success: true, Message: "Cart cleared"}, nil
}

// Checkout implements Carts. The availability re-check, order append, and
// cart clear are separate file writes with no transaction between them; a
// crash mid-way can leave stock logically oversold or a non-empty cart
// behind a recorded order. Acceptable for a single local session.
func (s *JSONCarts) Checkout(ctx context.Context, userID string) (CheckoutResult, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(cart.Items) == 0 {
		return CheckoutResult{Success: false, Message: "Cart is empty"}, nil
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	var total float64
	for _, item := range cart.Items {
		availability, err := s.catalog.CheckAvailability(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return CheckoutResult{}, err
		}
		if !availability.Available {
			return CheckoutResult{
				Success: false,
				Message: fmt.Sprintf("Product %s is no longer available in requested quantity", item.ProductID),
			}, nil
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		total += item.Price * float64(item.Quantity)
	}

	order := domain.Order{
		ID:        NewOrderID(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.orders.Append(ctx, order); err != nil {
		return CheckoutResult{}, err
	}
	if _, err := s.Clear(ctx, userID); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		Success: true,
		Message: "Order placed successfully",
		OrderID: order.ID,
		Total:   total,
	}, nil
}

// displayName resolves a product ID to its catalog name for messages,
// falling back to the raw ID when the product is gone.
func (s *JSONCarts) displayName(ctx context.Context, productID string) string {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil || product == nil {
		return productID
	}
	return product.Name
}

// NewOrderID generates an order identifier of the form ORD followed by six
// uppercase characters drawn from a fresh UUID.
func NewOrderID() string {
	return "ORD" + strings.ToUpper(uuid.NewString()[:6])
}

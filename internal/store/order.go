package store

import (
	"context"
	"sort"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

// estimatedDelivery maps an order status to a human-readable estimate.
var estimatedDelivery = map[string]string{
	domain.StatusPending:    "Order is being processed. Estimated delivery: 3-5 business days",
	domain.StatusProcessing: "Order is being prepared. Estimated delivery: 2-4 business days",
	domain.StatusShipped:    "Order has been shipped. Estimated delivery: 1-2 business days",
	domain.StatusDelivered:  "Order has been delivered",
	domain.StatusCancelled:  "Order has been cancelled",
}

// JSONOrders stores the order collection in a single JSON file.
type JSONOrders struct {
	path string
}

// NewJSONOrders creates an order store backed by the file at path.
func NewJSONOrders(path string) *JSONOrders {
	return &JSONOrders{path: path}
}

var _ Orders = (*JSONOrders)(nil)

func (s *JSONOrders) load() ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := readJSONFile(s.path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Append implements Orders.
func (s *JSONOrders) Append(ctx context.Context, order domain.Order) error {
	orders, err := s.load()
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return writeJSONFile(s.path, orders)
}

// GetByUser implements Orders.
func (s *JSONOrders) GetByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

// Track implements Orders.
func (s *JSONOrders) Track(ctx context.Context, orderID string) (*OrderStatus, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.ID != orderID {
			continue
		}
		delivery, ok := estimatedDelivery[order.Status]
		if !ok {
			delivery = "Status unknown"
		}
		return &OrderStatus{
			OrderID:           order.ID,
			Status:            order.Status,
			CreatedAt:         order.CreatedAt,
			Total:             order.Total,
			Items:             order.Items,
			EstimatedDelivery: delivery,
		}, nil
	}
	return nil, nil
}

// History implements Orders. Orders sort newest first by their RFC 3339
// created_at strings, which compare correctly as plain strings.
func (s *JSONOrders) History(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	orders, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

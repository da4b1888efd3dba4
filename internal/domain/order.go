package domain

// Order statuses. The assistant only ever creates pending orders; the other
// transitions happen out of band.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is a snapshot of one cart line frozen at checkout time,
// independent of later catalog or cart changes.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is an immutable record created at checkout. CreatedAt is an RFC 3339
// timestamp; order history relies on it sorting lexicographically.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
}

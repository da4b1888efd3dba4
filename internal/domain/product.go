// Package domain defines the retail entities handled by the assistant.
package domain

// Product is a single catalog entry. The catalog is read-only from the
// assistant's perspective; stock levels are maintained out of band.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand"`
}

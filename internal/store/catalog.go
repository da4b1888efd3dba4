package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

// JSONCatalog reads the product collection from a JSON file on every call,
// so external catalog edits are picked up without a restart.
type JSONCatalog struct {
	path string
}

// NewJSONCatalog creates a catalog backed by the products file at path.
func NewJSONCatalog(path string) *JSONCatalog {
	return &JSONCatalog{path: path}
}

var _ Catalog = (*JSONCatalog)(nil)

func (c *JSONCatalog) load() ([]domain.Product, error) {
	var products []domain.Product
	if _, err := readJSONFile(c.path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Search implements Catalog.
func (c *JSONCatalog) Search(ctx context.Context, query, category string, minPrice, maxPrice *float64) ([]domain.Product, error) {
	products, err := c.load()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	category = strings.ToLower(category)

	results := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if minPrice != nil && p.Price < *minPrice {
			continue
		}
		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// GetByID implements Catalog.
func (c *JSONCatalog) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// CheckAvailability implements Catalog.
func (c *JSONCatalog) CheckAvailability(ctx context.Context, id string, quantity int) (Availability, error) {
	product, err := c.GetByID(ctx, id)
	if err != nil {
		return Availability{}, err
	}
	if product == nil {
		return Availability{
			Available: false,
			Stock:     0,
			Requested: quantity,
			Message:   "Product not found",
		}, nil
	}

	available := product.Stock >= quantity
	message := "Available"
	if !available {
		message = fmt.Sprintf("Not enough stock: %d available, %d requested", product.Stock, quantity)
	}
	return Availability{
		Available: available,
		Stock:     product.Stock,
		Requested: quantity,
		Message:   message,
	}, nil
}

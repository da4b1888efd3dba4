package assistant

import (
	"context"

	"github.com/wrteam/sportcenter-assistant/internal/registry"
	"github.com/wrteam/sportcenter-assistant/internal/store"
	"github.com/wrteam/sportcenter-assistant/internal/support"
)

// defaultHistoryLimit caps order history when the model does not ask for a
// specific limit.
const defaultHistoryLimit = 10

// BuildRegistry binds every store and support operation into the static
// registry advertised to the model. Operations that take a user_id fall
// back to defaultUser when the model omits it.
//
//nolint:funlen // One Register call per operation keeps the whole surface in one place.
func BuildRegistry(catalog store.Catalog, carts store.Carts, orders store.Orders, kb *support.KnowledgeBase, defaultUser string) *registry.Registry {
	reg := registry.New()

	userParam := registry.Param{
		Name:        "user_id",
		Type:        registry.TypeString,
		Description: "User ID (defaults to current user if not provided)",
	}

	// Product operations.

	reg.Register(registry.Operation{
		Name:        "search_products",
		Description: "Search for sports products based on various criteria like name, category, and price range",
		Params: []registry.Param{
			{Name: "query", Type: registry.TypeString, Description: "Search term for product name or description"},
			{Name: "category", Type: registry.TypeString, Description: "Product category (e.g., Football, Baseball, Tennis, Apparel, Safety, Footwear)"},
			{Name: "min_price", Type: registry.TypeNumber, Description: "Minimum price filter"},
			{Name: "max_price", Type: registry.TypeNumber, Description: "Maximum price filter"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			query, err := args.StringOr("query", "")
			if err != nil {
				return nil, err
			}
			category, err := args.StringOr("category", "")
			if err != nil {
				return nil, err
			}
			minPrice, err := args.Float("min_price")
			if err != nil {
				return nil, err
			}
			maxPrice, err := args.Float("max_price")
			if err != nil {
				return nil, err
			}
			return catalog.Search(ctx, query, category, minPrice, maxPrice)
		},
	})

	reg.Register(registry.Operation{
		Name:        "get_product_by_id",
		Description: "Get detailed information about a specific product using its ID",
		Params: []registry.Param{
			{Name: "product_id", Type: registry.TypeString, Description: "The unique product ID", Required: true},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			productID, err := args.String("product_id")
			if err != nil {
				return nil, err
			}
			return catalog.GetByID(ctx, productID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "check_product_availability",
		Description: "Check if a product is available in stock for the requested quantity",
		Params: []registry.Param{
			{Name: "product_id", Type: registry.TypeString, Description: "The unique product ID to check", Required: true},
			{Name: "quantity", Type: registry.TypeInteger, Description: "Quantity needed (default: 1)"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			productID, err := args.String("product_id")
			if err != nil {
				return nil, err
			}
			quantity, err := args.IntOr("quantity", 1)
			if err != nil {
				return nil, err
			}
			return catalog.CheckAvailability(ctx, productID, quantity)
		},
	})

	// Order operations.

	reg.Register(registry.Operation{
		Name:        "track_order",
		Description: "Track the status of a specific order using order ID",
		Params: []registry.Param{
			{Name: "order_id", Type: registry.TypeString, Description: "The unique order ID to track (e.g., ORD001, ORD002)", Required: true},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			orderID, err := args.String("order_id")
			if err != nil {
				return nil, err
			}
			return orders.Track(ctx, orderID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "get_user_orders",
		Description: "Get all orders for a specific user",
		Params:      []registry.Param{userParam},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return orders.GetByUser(ctx, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "get_order_history",
		Description: "Get recent order history for a user",
		Params: []registry.Param{
			userParam,
			{Name: "limit", Type: registry.TypeInteger, Description: "Maximum number of orders to return (default: 10)"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			limit, err := args.IntOr("limit", defaultHistoryLimit)
			if err != nil {
				return nil, err
			}
			return orders.History(ctx, userID, limit)
		},
	})

	// Cart operations.

	reg.Register(registry.Operation{
		Name:        "add_to_cart",
		Description: "Add a product to the shopping cart",
		Params: []registry.Param{
			{Name: "product_id", Type: registry.TypeString, Description: "Product ID to add to cart", Required: true},
			{Name: "quantity", Type: registry.TypeInteger, Description: "Quantity to add (default: 1)"},
			userParam,
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			productID, err := args.String("product_id")
			if err != nil {
				return nil, err
			}
			quantity, err := args.IntOr("quantity", 1)
			if err != nil {
				return nil, err
			}
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.Add(ctx, productID, quantity, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "remove_from_cart",
		Description: "Remove a product from the shopping cart",
		Params: []registry.Param{
			{Name: "product_id", Type: registry.TypeString, Description: "Product ID to remove from cart", Required: true},
			userParam,
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			productID, err := args.String("product_id")
			if err != nil {
				return nil, err
			}
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.Remove(ctx, productID, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "update_cart_quantity",
		Description: "Update the quantity of a product in the cart",
		Params: []registry.Param{
			{Name: "product_id", Type: registry.TypeString, Description: "Product ID to update", Required: true},
			{Name: "quantity", Type: registry.TypeInteger, Description: "New quantity", Required: true},
			userParam,
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			productID, err := args.String("product_id")
			if err != nil {
				return nil, err
			}
			quantity, err := args.Int("quantity")
			if err != nil {
				return nil, err
			}
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.UpdateQuantity(ctx, productID, quantity, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "view_cart",
		Description: "View current shopping cart contents",
		Params:      []registry.Param{userParam},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.View(ctx, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "clear_cart",
		Description: "Clear all items from the shopping cart",
		Params:      []registry.Param{userParam},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.Clear(ctx, userID)
		},
	})

	reg.Register(registry.Operation{
		Name:        "checkout",
		Description: "Checkout the current cart and create an order",
		Params:      []registry.Param{userParam},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			userID, err := args.StringOr("user_id", defaultUser)
			if err != nil {
				return nil, err
			}
			return carts.Checkout(ctx, userID)
		},
	})

	// Support operations.

	reg.Register(registry.Operation{
		Name:        "get_help",
		Description: "Get help information on various topics like return policy, shipping, warranty, etc.",
		Params: []registry.Param{
			{Name: "topic", Type: registry.TypeString, Description: "Help topic (return_policy, shipping, warranty, size_guide, payment, contact)"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			topic, err := args.StringOr("topic", "")
			if err != nil {
				return nil, err
			}
			return kb.Help(topic), nil
		},
	})

	reg.Register(registry.Operation{
		Name:        "get_store_info",
		Description: "Get store contact information, hours, and location details",
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return kb.StoreInfo(), nil
		},
	})

	reg.Register(registry.Operation{
		Name:        "report_issue",
		Description: "Report an issue or problem to customer support",
		Params: []registry.Param{
			{Name: "issue_type", Type: registry.TypeString, Description: "Type of issue (order, product, website, other)", Required: true},
			{Name: "description", Type: registry.TypeString, Description: "Detailed description of the issue", Required: true},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			issueType, err := args.String("issue_type")
			if err != nil {
				return nil, err
			}
			description, err := args.String("description")
			if err != nil {
				return nil, err
			}
			return kb.ReportIssue(issueType, description), nil
		},
	})

	reg.Register(registry.Operation{
		Name:        "get_size_guide",
		Description: "Get size guide information for different product categories",
		Params: []registry.Param{
			{Name: "category", Type: registry.TypeString, Description: "Product category (footwear, apparel, equipment)"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			category, err := args.StringOr("category", "")
			if err != nil {
				return nil, err
			}
			return kb.SizeGuide(category), nil
		},
	})

	return reg
}

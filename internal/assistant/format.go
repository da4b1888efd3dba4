package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
	"github.com/wrteam/sportcenter-assistant/internal/store"
	"github.com/wrteam/sportcenter-assistant/internal/support"
)

// maxSearchResultsShown limits how many matches are spelled out in full;
// the rest are summarized as a count.
const maxSearchResultsShown = 3

// Format renders a structured operation result as display text. It is a
// pure function keyed by operation name; results of an unexpected shape
// fall back to generic JSON stringification so every call produces some
// reply.
func Format(operation string, result any) string {
	switch operation {
	case "search_products":
		if products, ok := result.([]domain.Product); ok {
			return formatSearch(products)
		}
	case "get_product_by_id":
		if product, ok := result.(*domain.Product); ok {
			return formatProduct(product)
		}
	case "check_product_availability":
		if availability, ok := result.(store.Availability); ok {
			return formatAvailability(availability)
		}
	case "add_to_cart":
		if res, ok := result.(store.Result); ok {
			if res.Success {
				return res.Message + "\n\nWould you like to view your cart or continue shopping?"
			}
			return res.Message + "\n\nPlease check the product ID and try again."
		}
	case "remove_from_cart", "update_cart_quantity", "clear_cart":
		if res, ok := result.(store.Result); ok {
			return res.Message
		}
	case "view_cart":
		if view, ok := result.(store.CartView); ok {
			return formatCart(view)
		}
	case "checkout":
		if res, ok := result.(store.CheckoutResult); ok {
			return formatCheckout(res)
		}
	case "track_order":
		if status, ok := result.(*store.OrderStatus); ok {
			return formatTracking(status)
		}
	case "get_user_orders", "get_order_history":
		if orders, ok := result.([]domain.Order); ok {
			return formatOrders(orders)
		}
	case "get_help":
		if help, ok := result.(support.HelpResult); ok {
			return formatHelp(help)
		}
	case "get_store_info":
		if info, ok := result.(support.StoreInfo); ok {
			return formatStoreInfo(info)
		}
	case "report_issue":
		if ticket, ok := result.(support.IssueTicket); ok {
			return ticket.Message + "\n" + ticket.NextSteps
		}
	case "get_size_guide":
		if guide, ok := result.(support.SizeGuideResult); ok {
			return formatSizeGuide(guide)
		}
	}
	return formatGeneric(result)
}

func formatSearch(products []domain.Product) string {
	if len(products) == 0 {
		return "I couldn't find any products matching your search. Please try different search terms or browse our categories: Football, Baseball, Tennis, Apparel, Footwear, Safety equipment."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d products matching your search:\n\n", len(products))
	shown := products
	if len(shown) > maxSearchResultsShown {
		shown = shown[:maxSearchResultsShown]
	}
	for _, p := range shown {
		fmt.Fprintf(&b, "%s (ID: %s)\n", p.Name, p.ID)
		fmt.Fprintf(&b, "  $%.2f | %d in stock\n", p.Price, p.Stock)
		fmt.Fprintf(&b, "  %s\n\n", p.Description)
	}
	if rest := len(products) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "... and %d more products.\n\n", rest)
	}
	b.WriteString("To add any item to your cart, just tell me: 'Add [PRODUCT_ID] to cart' (e.g., 'Add BALL001 to cart').")
	return b.String()
}

func formatProduct(p *domain.Product) string {
	if p == nil {
		return "I couldn't find a product with that ID. Please check the product ID and try again."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (ID: %s)\n", p.Name, p.ID)
	fmt.Fprintf(&b, "Brand: %s | Category: %s\n", p.Brand, p.Category)
	fmt.Fprintf(&b, "Price: $%.2f | Stock: %d\n", p.Price, p.Stock)
	fmt.Fprintf(&b, "%s", p.Description)
	return b.String()
}

func formatAvailability(a store.Availability) string {
	if a.Available {
		return fmt.Sprintf("Yes, it's available: %d in stock (%d requested).", a.Stock, a.Requested)
	}
	return fmt.Sprintf("Sorry, that isn't available right now. %s", a.Message)
}

func formatCart(view store.CartView) string {
	if len(view.Items) == 0 {
		return "Your cart is empty. Browse our products and add some items!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your Cart (%d items):\n\n", view.ItemCount)
	for _, item := range view.Items {
		fmt.Fprintf(&b, "- %s (ID: %s)\n", item.Name, item.ProductID)
		fmt.Fprintf(&b, "  Quantity: %d x $%.2f = $%.2f\n", item.Quantity, item.Price, item.ItemTotal)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n\n", view.Total)
	b.WriteString("Tell me 'Checkout my cart' when ready, keep shopping, or ask me to remove an item.")
	return b.String()
}

func formatCheckout(res store.CheckoutResult) string {
	if !res.Success {
		return res.Message
	}
	return fmt.Sprintf("%s\nOrder ID: %s\nTotal: $%.2f\n\nYou can track it any time by telling me the order ID.", res.Message, res.OrderID, res.Total)
}

func formatTracking(status *store.OrderStatus) string {
	if status == nil {
		return "Order not found. Please check the order ID and try again."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", status.OrderID)
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(status.Status))
	fmt.Fprintf(&b, "Total: $%.2f\n", status.Total)
	fmt.Fprintf(&b, "Created: %s\n", status.CreatedAt)
	fmt.Fprintf(&b, "%s\n\nItems:\n", status.EstimatedDelivery)
	for _, item := range status.Items {
		fmt.Fprintf(&b, "- Product %s: %d x $%.2f\n", item.ProductID, item.Quantity, item.Price)
	}
	return b.String()
}

func formatOrders(orders []domain.Order) string {
	if len(orders) == 0 {
		return "You don't have any orders yet. Start shopping to place your first order!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your Orders (%d orders):\n\n", len(orders))
	for _, order := range orders {
		fmt.Fprintf(&b, "- %s - $%.2f - %s\n", order.ID, order.Total, strings.ToUpper(order.Status))
	}
	b.WriteString("\nTo track a specific order, just tell me the order ID (like ORD001).")
	return b.String()
}

func formatHelp(help support.HelpResult) string {
	if help.Topic != "" {
		title := titleCase(strings.ReplaceAll(help.Topic, "_", " "))
		return fmt.Sprintf("%s information:\n%s\n\n%s", title, help.Information, help.AdditionalHelp)
	}
	var b strings.Builder
	b.WriteString("WRTeam Sport Center Help\n\nAvailable topics:\n")
	for _, topic := range help.AvailableTopics {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(topic, "_", " "))
	}
	return b.String()
}

func formatStoreInfo(info support.StoreInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", info.Name)
	fmt.Fprintf(&b, "Hours: %s\n", info.Hours)
	fmt.Fprintf(&b, "Phone: %s | Email: %s\n", info.Phone, info.Email)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	fmt.Fprintf(&b, "Website: %s", info.Website)
	return b.String()
}

func formatSizeGuide(result support.SizeGuideResult) string {
	if result.Guide == nil {
		var b strings.Builder
		b.WriteString("Size guides are available for:\n")
		for _, category := range result.AvailableCategories {
			fmt.Fprintf(&b, "- %s\n", category)
		}
		b.WriteString("Ask about any of them for details.")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Size guide for %s:\n", result.Category)
	if len(result.Guide.Sizes) > 0 {
		fmt.Fprintf(&b, "Sizes: %s\n", strings.Join(result.Guide.Sizes, ", "))
	}
	if result.Guide.Guide != "" {
		fmt.Fprintf(&b, "%s\n", result.Guide.Guide)
	}
	for _, size := range result.Guide.Sizes {
		if m, ok := result.Guide.Measurements[size]; ok {
			fmt.Fprintf(&b, "  %s: %s\n", size, m)
		}
	}
	if result.Guide.Tips != "" {
		fmt.Fprintf(&b, "Tip: %s", result.Guide.Tips)
	}
	return strings.TrimRight(b.String(), "\n")
}

// titleCase uppercases the first letter of each space-separated word.
// Topic keys are plain ASCII, so byte arithmetic is enough here.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w[0] >= 'a' && w[0] <= 'z' {
			words[i] = string(w[0]-'a'+'A') + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func formatGeneric(result any) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}

package assistant

import (
	"strings"
	"testing"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
	"github.com/wrteam/sportcenter-assistant/internal/store"
	"github.com/wrteam/sportcenter-assistant/internal/support"
)

func TestFormatSearchEmpty(t *testing.T) {
	t.Parallel()

	got := Format("search_products", []domain.Product{})
	if !strings.Contains(got, "couldn't find any products") {
		t.Fatalf("expected no-match message, got %q", got)
	}
}

func TestFormatSearchTruncatesLongResults(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		{ID: "A", Name: "Alpha", Price: 1, Stock: 1},
		{ID: "B", Name: "Bravo", Price: 2, Stock: 2},
		{ID: "C", Name: "Charlie", Price: 3, Stock: 3},
		{ID: "D", Name: "Delta", Price: 4, Stock: 4},
		{ID: "E", Name: "Echo", Price: 5, Stock: 5},
	}

	got := Format("search_products", products)
	if !strings.Contains(got, "I found 5 products") {
		t.Fatalf("expected full match count, got %q", got)
	}
	if !strings.Contains(got, "... and 2 more products.") {
		t.Fatalf("expected overflow summary, got %q", got)
	}
	if strings.Contains(got, "Delta") {
		t.Fatalf("products past the cutoff should not be listed: %q", got)
	}
}

func TestFormatProductNil(t *testing.T) {
	t.Parallel()

	got := Format("get_product_by_id", (*domain.Product)(nil))
	if !strings.Contains(got, "couldn't find a product") {
		t.Fatalf("expected not-found message, got %q", got)
	}
}

func TestFormatAvailability(t *testing.T) {
	t.Parallel()

	yes := Format("check_product_availability", store.Availability{Available: true, Stock: 9, Requested: 2})
	if !strings.Contains(yes, "9 in stock") {
		t.Fatalf("expected stock count, got %q", yes)
	}

	no := Format("check_product_availability", store.Availability{Available: false, Stock: 1, Requested: 5, Message: "Only 1 available"})
	if !strings.Contains(no, "Only 1 available") {
		t.Fatalf("expected shortage message, got %q", no)
	}
}

func TestFormatCart(t *testing.T) {
	t.Parallel()

	empty := Format("view_cart", store.CartView{})
	if !strings.Contains(empty, "cart is empty") {
		t.Fatalf("expected empty-cart message, got %q", empty)
	}

	view := store.CartView{
		Items: []store.CartLine{
			{ProductID: "BALL001", Name: "Pro League Football", Quantity: 2, Price: 29.99, ItemTotal: 59.98},
		},
		Total:     59.98,
		ItemCount: 2,
	}
	got := Format("view_cart", view)
	if !strings.Contains(got, "Your Cart (2 items)") || !strings.Contains(got, "$59.98") {
		t.Fatalf("unexpected cart rendering: %q", got)
	}
}

func TestFormatCheckout(t *testing.T) {
	t.Parallel()

	ok := Format("checkout", store.CheckoutResult{Success: true, Message: "Order placed successfully!", OrderID: "ORDABC123", Total: 59.98})
	if !strings.Contains(ok, "ORDABC123") || !strings.Contains(ok, "$59.98") {
		t.Fatalf("unexpected checkout rendering: %q", ok)
	}

	failed := Format("checkout", store.CheckoutResult{Success: false, Message: "Cart is empty"})
	if failed != "Cart is empty" {
		t.Fatalf("failed checkout should pass the message through, got %q", failed)
	}
}

func TestFormatTrackingNil(t *testing.T) {
	t.Parallel()

	got := Format("track_order", (*store.OrderStatus)(nil))
	if !strings.Contains(got, "Order not found") {
		t.Fatalf("expected not-found message, got %q", got)
	}
}

func TestFormatOrders(t *testing.T) {
	t.Parallel()

	none := Format("get_user_orders", []domain.Order{})
	if !strings.Contains(none, "don't have any orders") {
		t.Fatalf("expected no-orders message, got %q", none)
	}

	orders := []domain.Order{{ID: "ORDAAA111", Total: 10, Status: domain.StatusShipped}}
	got := Format("get_order_history", orders)
	if !strings.Contains(got, "ORDAAA111") || !strings.Contains(got, "SHIPPED") {
		t.Fatalf("unexpected order list rendering: %q", got)
	}
}

func TestFormatHelp(t *testing.T) {
	t.Parallel()

	topic := Format("get_help", support.HelpResult{
		Topic:          "return_policy",
		Information:    "30 days with receipt.",
		AdditionalHelp: "Contact support for more.",
	})
	if !strings.Contains(topic, "Return Policy information:") {
		t.Fatalf("expected title-cased topic heading, got %q", topic)
	}

	index := Format("get_help", support.HelpResult{AvailableTopics: []string{"shipping", "payment"}})
	if !strings.Contains(index, "Available topics:") || !strings.Contains(index, "- shipping") {
		t.Fatalf("unexpected topic index rendering: %q", index)
	}
}

func TestFormatSizeGuide(t *testing.T) {
	t.Parallel()

	guide := Format("get_size_guide", support.SizeGuideResult{
		Category: "apparel",
		Guide: &support.SizeGuide{
			Sizes:        []string{"S", "M"},
			Measurements: map[string]string{"S": "Chest: 35-37 inches", "M": "Chest: 38-40 inches"},
			Tips:         "Measure your chest.",
		},
	})
	if !strings.Contains(guide, "Sizes: S, M") || !strings.Contains(guide, "M: Chest: 38-40 inches") {
		t.Fatalf("unexpected size guide rendering: %q", guide)
	}

	index := Format("get_size_guide", support.SizeGuideResult{AvailableCategories: []string{"footwear"}})
	if !strings.Contains(index, "available for:") {
		t.Fatalf("unexpected category index rendering: %q", index)
	}
}

func TestFormatUnexpectedShapeFallsBackToJSON(t *testing.T) {
	t.Parallel()

	got := Format("search_products", map[string]any{"weird": true})
	if !strings.Contains(got, `"weird": true`) {
		t.Fatalf("expected JSON fallback, got %q", got)
	}
}

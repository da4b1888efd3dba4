package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

func newOrderStore(t *testing.T) *JSONOrders {
	t.Helper()
	return NewJSONOrders(filepath.Join(t.TempDir(), "orders.json"))
}

func TestTrackUnknownOrderReturnsNil(t *testing.T) {
	t.Parallel()

	orders := newOrderStore(t)
	status, err := orders.Track(context.Background(), "ORD000000")
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if status != nil {
		t.Fatalf("expected nil for unknown order, got %+v", status)
	}
}

func TestTrackDeliveryEstimates(t *testing.T) {
	t.Parallel()

	orders := newOrderStore(t)
	ctx := context.Background()

	tests := []struct {
		status string
		want   string
	}{
		{status: domain.StatusPending, want: "Order is being processed. Estimated delivery: 3-5 business days"},
		{status: domain.StatusProcessing, want: "Order is being prepared. Estimated delivery: 2-4 business days"},
		{status: domain.StatusShipped, want: "Order has been shipped. Estimated delivery: 1-2 business days"},
		{status: domain.StatusDelivered, want: "Order has been delivered"},
		{status: domain.StatusCancelled, want: "Order has been cancelled"},
		{status: "lost-in-warehouse", want: "Status unknown"},
	}

	for i, tt := range tests {
		order := domain.Order{
			ID:        NewOrderID(),
			UserID:    testUser,
			Items:     []domain.OrderItem{{ProductID: "A", Quantity: 1, Price: 10}},
			Total:     10,
			Status:    tt.status,
			CreatedAt: "2026-08-30T10:00:00Z",
		}
		if err := orders.Append(ctx, order); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}

		status, err := orders.Track(ctx, order.ID)
		if err != nil {
			t.Fatalf("Track failed: %v", err)
		}
		if status == nil {
			t.Fatalf("expected tracked order for %q", order.ID)
		}
		if status.EstimatedDelivery != tt.want {
			t.Fatalf("status %q: expected %q, got %q", tt.status, tt.want, status.EstimatedDelivery)
		}
	}
}

func TestGetByUserFiltersByUser(t *testing.T) {
	t.Parallel()

	orders := newOrderStore(t)
	ctx := context.Background()

	for _, userID := range []string{testUser, "other", testUser} {
		order := domain.Order{ID: NewOrderID(), UserID: userID, Status: domain.StatusPending, CreatedAt: "2026-08-30T10:00:00Z"}
		if err := orders.Append(ctx, order); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := orders.GetByUser(ctx, testUser)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders for %s, got %+v", testUser, got)
	}
}

func TestHistorySortsNewestFirstAndHonorsLimit(t *testing.T) {
	t.Parallel()

	orders := newOrderStore(t)
	ctx := context.Background()

	timestamps := []string{
		"2026-08-28T09:00:00Z",
		"2026-08-30T15:30:00Z",
		"2026-08-29T12:00:00Z",
	}
	ids := make([]string, len(timestamps))
	for i, ts := range timestamps {
		ids[i] = NewOrderID()
		order := domain.Order{ID: ids[i], UserID: testUser, Status: domain.StatusPending, CreatedAt: ts}
		if err := orders.Append(ctx, order); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := orders.History(ctx, testUser, 2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	wantIDs := []string{ids[1], ids[2]}
	gotIDs := make([]string, 0, len(got))
	for _, order := range got {
		gotIDs = append(gotIDs, order.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Fatalf("expected newest-first %v, got %v", wantIDs, gotIDs)
	}
}

func TestOrderRoundTrip(t *testing.T) {
	t.Parallel()

	orders := newOrderStore(t)
	ctx := context.Background()

	order := domain.Order{
		ID:     NewOrderID(),
		UserID: testUser,
		Items: []domain.OrderItem{
			{ProductID: "A", Quantity: 2, Price: 10},
			{ProductID: "B", Quantity: 1, Price: 5},
		},
		Total:     25,
		Status:    domain.StatusPending,
		CreatedAt: "2026-08-30T10:00:00Z",
	}
	if err := orders.Append(ctx, order); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := orders.GetByUser(ctx, testUser)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], order) {
		t.Fatalf("round trip mismatch: stored %+v, loaded %+v", order, got)
	}
}

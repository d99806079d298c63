// ABOUTME: Tests for the order history component
// ABOUTME: Validates list rendering, discount display and narrow layouts

package orders

import (
	"strings"
	"testing"

	"github.com/shopdemo/storefront/internal/client"
)

func sampleOrders() []client.Order {
	return []client.Order{
		{
			ID: 7, TotalAmount: 50, Discount: 10, FinalAmount: 40, CouponCode: "SAVE10", Status: "PAID",
			Items: []client.OrderItem{{ProductID: 1, Quantity: 2, Price: 25, Product: &client.Product{Name: "Mug"}}},
		},
		{ID: 8, TotalAmount: 12, Status: "PENDING"},
	}
}

func TestHistoryView(t *testing.T) {
	h := New(120, 30)
	h.SetOrders(sampleOrders())
	view := h.View()

	for _, expected := range []string{"Orders", "#7", "#8", "PAID", "PENDING", "Mug", "$40.00", "Discount", "SAVE10"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestHistoryNarrow(t *testing.T) {
	h := New(50, 30)
	h.SetOrders(sampleOrders())
	view := h.View()
	if !strings.Contains(view, "Order #7") {
		t.Errorf("expected stacked detail in narrow view\nView:\n%s", view)
	}
}

func TestHistorySelection(t *testing.T) {
	h := New(120, 30)
	h.SetOrders(sampleOrders())
	h.MoveDown()
	h.MoveDown()

	o, ok := h.Selected()
	if !ok || o.ID != 8 {
		t.Fatalf("expected order 8 selected, got %+v", o)
	}
	if strings.Contains(h.View(), "Discount:") {
		t.Error("order without discount should not show a discount line")
	}
}

func TestHistoryStates(t *testing.T) {
	h := New(80, 24)
	if !strings.Contains(h.View(), "Loading") {
		t.Error("expected loading message")
	}
	h.SetOrders([]client.Order{})
	if !strings.Contains(h.View(), "No orders yet.") {
		t.Error("expected empty message")
	}
}

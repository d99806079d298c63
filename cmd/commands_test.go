// ABOUTME: Tests for product, cart and order commands
// ABOUTME: Verifies request shapes, human formatting and JSON output

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/session/sessiontest"
)

func TestFormatProductsHuman(t *testing.T) {
	output := formatProductsHuman([]client.Product{
		{ID: 1, Name: "Mug", Price: 12.5, Stock: 20},
		{ID: 2, Name: "Lamp", Price: 30, Stock: 0},
	})

	for _, check := range []string{"ID", "Name", "Mug", "$12.50", "Lamp", "$30.00", "20"} {
		if !strings.Contains(output, check) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
	if formatProductsHuman(nil) != "No products found." {
		t.Error("expected empty message")
	}
}

func TestFormatCartHuman(t *testing.T) {
	output := formatCartHuman([]client.CartItem{
		{ID: 10, ProductID: 1, Quantity: 2, Product: &client.Product{Name: "Mug", Price: 12.5}},
		{ID: 11, ProductID: 7, Quantity: 1},
	})

	for _, check := range []string{"Mug", "product #7", "$25.00", "Total: $25.00"} {
		if !strings.Contains(output, check) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
	if formatCartHuman(nil) != "Your cart is empty." {
		t.Error("expected empty message")
	}
}

func TestFormatOrderHuman_Discount(t *testing.T) {
	output := formatOrderHuman(&client.Order{
		ID: 7, Status: "PAID", TotalAmount: 50, Discount: 10, FinalAmount: 40, CouponCode: "SAVE10",
		Items: []client.OrderItem{{ProductID: 1, Quantity: 2, Price: 25}},
	})

	for _, check := range []string{"#7", "PAID", "$50.00", "-$10.00 (SAVE10)", "Paid:         $40.00", "product #1"} {
		if !strings.Contains(output, check) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
}

func TestFormatOrdersHuman_UsesPaidAmount(t *testing.T) {
	output := formatOrdersHuman([]client.Order{
		{ID: 1, Status: "PAID", TotalAmount: 50, Discount: 10, FinalAmount: 40},
	})
	if !strings.Contains(output, "$40.00") {
		t.Error("expected the discounted amount")
	}
	if formatOrdersHuman(nil) != "No orders yet." {
		t.Error("expected empty message")
	}
}

func TestParseArgs(t *testing.T) {
	if _, err := parseID("0"); err == nil {
		t.Error("expected error for zero id")
	}
	if _, err := parseID("abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
	if v, err := parseID("42"); err != nil || v != 42 {
		t.Errorf("expected 42, got %d (%v)", v, err)
	}
	if _, err := parseQuantity("0"); err == nil {
		t.Error("expected error for zero quantity")
	}
	if v, err := parseQuantity("3"); err != nil || v != 3 {
		t.Errorf("expected 3, got %d (%v)", v, err)
	}
}

func TestRunProductsListJSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()
	a := newTestApp(t, "", jsonHandler(http.StatusOK, []client.Product{{ID: 1, Name: "Mug", Price: 12.5}}))

	var out bytes.Buffer
	if code := runProductsList(context.Background(), a, &out, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	var parsed []client.Product
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Name != "Mug" {
		t.Errorf("unexpected products %+v", parsed)
	}
}

func TestRunProductsCreateValidates(t *testing.T) {
	called := false
	a := newTestApp(t, sessiontest.Seller(t), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	productInput = client.ProductInput{Name: "", Price: 0}
	defer func() { productInput = client.ProductInput{} }()

	var out bytes.Buffer
	code := runProductsCreate(context.Background(), a, &out, nil)

	if code != exitError {
		t.Errorf("expected exit code %d, got %d", exitError, code)
	}
	if called {
		t.Error("invalid input must not reach the backend")
	}
}

func TestRunCartAdd(t *testing.T) {
	var got client.CartRequest
	a := newTestApp(t, sessiontest.Buyer(t), func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(client.CartItem{ID: 5, ProductID: got.ProductID, Quantity: got.Quantity})
	})

	var out bytes.Buffer
	code := runCartAdd(context.Background(), a, &out, []string{"3", "2"})

	if code != exitOK {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if got.ProductID != 3 || got.Quantity != 2 {
		t.Errorf("unexpected cart request %+v", got)
	}
	if !strings.Contains(out.String(), "Added 2 x product #3") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunCheckoutWithCoupon(t *testing.T) {
	var got client.CheckoutRequest
	a := newTestApp(t, sessiontest.Buyer(t), func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(client.Order{ID: 9, Status: "PAID", TotalAmount: 50, Discount: 5, FinalAmount: 45, CouponCode: got.CouponCode})
	})
	couponCode = "SAVE5"
	defer func() { couponCode = "" }()

	var out bytes.Buffer
	code := runCheckout(context.Background(), a, &out, nil)

	if code != exitOK {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if got.CouponCode != "SAVE5" {
		t.Errorf("expected coupon in request, got %q", got.CouponCode)
	}
	if !strings.Contains(out.String(), "Order placed.") || !strings.Contains(out.String(), "$45.00") {
		t.Errorf("unexpected output %q", out.String())
	}
}

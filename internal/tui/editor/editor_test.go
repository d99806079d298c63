// ABOUTME: Tests for the product editor
// ABOUTME: Validates defaults, prefill from an existing product and field validation

package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shopdemo/storefront/internal/client"
)

func TestEditorNewProductDefaults(t *testing.T) {
	e := New(nil)

	if !e.IsNew() {
		t.Error("expected a new product editor")
	}
	if e.input.Stock != 1 {
		t.Errorf("expected default stock 1, got %d", e.input.Stock)
	}
	if e.price != "" {
		t.Errorf("expected empty price, got %q", e.price)
	}
	if e.step != 1 {
		t.Errorf("expected step 1, got %d", e.step)
	}
}

func TestEditorPrefillsProduct(t *testing.T) {
	e := New(&client.Product{
		ID:          7,
		Name:        "Mug",
		Description: "Ceramic",
		Price:       12.5,
		Stock:       3,
		ImageURL:    "http://localhost:8080/uploads/mug.png",
	})

	if e.IsNew() {
		t.Error("expected edit mode")
	}
	if e.name != "Mug" || e.description != "Ceramic" {
		t.Errorf("unexpected text fields %q %q", e.name, e.description)
	}
	if e.price != "12.50" {
		t.Errorf("expected price 12.50, got %q", e.price)
	}
	if e.stock != "3" {
		t.Errorf("expected stock 3, got %q", e.stock)
	}
	if !strings.Contains(e.View(), "Edit product #7") {
		t.Error("expected edit title in view")
	}
}

func TestEditorAdvanceBuildsInput(t *testing.T) {
	e := New(&client.Product{ID: 4, Name: "Lamp", Price: 30, Stock: 2})
	e.name = "  Desk lamp "

	e.advanceStep()
	if e.step != 2 {
		t.Fatalf("expected step 2, got %d", e.step)
	}
	if e.input.Name != "Desk lamp" {
		t.Errorf("expected trimmed name, got %q", e.input.Name)
	}

	e.price = "45.00"
	e.stock = "8"
	_, cmd := e.advanceStep()
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	msg, ok := cmd().(SavedMsg)
	if !ok {
		t.Fatal("expected SavedMsg")
	}
	if msg.ProductID != 4 || msg.Input.Price != 45 || msg.Input.Stock != 8 {
		t.Errorf("unexpected saved input: %d %+v", msg.ProductID, msg.Input)
	}
}

func TestEditorEscCancels(t *testing.T) {
	e := New(nil)
	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg")
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"19.99", false},
		{"1", false},
		{"0", true},
		{"-5", true},
		{"abc", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := validatePrice(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}

func TestValidateStock(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0", false},
		{"10", false},
		{"-1", true},
		{"1.5", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := validateStock(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}

func TestValidateImageURL(t *testing.T) {
	if err := validateImageURL(""); err != nil {
		t.Errorf("empty URL is optional: %v", err)
	}
	if err := validateImageURL("http://localhost:8080/uploads/a.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateImageURL("uploads/a.png"); err == nil {
		t.Error("expected error for relative URL")
	}
}

func TestValidateName(t *testing.T) {
	if err := validateName("   "); err == nil {
		t.Error("expected error for blank name")
	}
	if err := validateName(strings.Repeat("x", 256)); err == nil {
		t.Error("expected error for long name")
	}
}

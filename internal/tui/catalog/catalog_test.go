// ABOUTME: Tests for the catalog component
// ABOUTME: Validates product rendering, cursor movement and scrolling

package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopdemo/storefront/internal/client"
)

func sampleProducts() []client.Product {
	return []client.Product{
		{ID: 1, Name: "Mug", Description: "Ceramic mug", Price: 12.5, Stock: 20},
		{ID: 2, Name: "Lamp", Price: 30, Stock: 2},
		{ID: 3, Name: "Poster", Price: 8, Stock: 0},
	}
}

func TestCatalogView(t *testing.T) {
	c := New("Products", 100, 30)
	c.SetProducts(sampleProducts())
	view := c.View()

	for _, expected := range []string{"Products", "Mug", "Lamp", "$12.50", "20 in stock", "SOLD OUT", "Ceramic mug"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestCatalogLoading(t *testing.T) {
	c := New("Products", 80, 24)
	if !strings.Contains(c.View(), "Loading") {
		t.Error("expected loading message before products are set")
	}
}

func TestCatalogEmpty(t *testing.T) {
	c := New("My products", 80, 24)
	c.SetProducts(nil)
	if !strings.Contains(c.View(), "No products found") {
		t.Error("expected empty message")
	}
	if _, ok := c.Selected(); ok {
		t.Error("expected no selection in empty catalog")
	}
}

func TestCatalogCursor(t *testing.T) {
	c := New("Products", 80, 24)
	c.SetProducts(sampleProducts())

	c.MoveUp()
	if p, _ := c.Selected(); p.ID != 1 {
		t.Errorf("cursor should stay at top, got %d", p.ID)
	}

	c.MoveDown()
	c.MoveDown()
	c.MoveDown()
	if p, _ := c.Selected(); p.ID != 3 {
		t.Errorf("cursor should stop at bottom, got %d", p.ID)
	}

	c.SetProducts(sampleProducts()[:1])
	if p, ok := c.Selected(); !ok || p.ID != 1 {
		t.Error("cursor should be clamped after the list shrinks")
	}
}

func TestCatalogScrolls(t *testing.T) {
	var products []client.Product
	for i := 1; i <= 40; i++ {
		products = append(products, client.Product{ID: int64(i), Name: fmt.Sprintf("Item %02d", i), Price: 1, Stock: 10})
	}

	c := New("Products", 80, 20)
	c.SetProducts(products)
	for i := 0; i < 30; i++ {
		c.MoveDown()
	}

	view := c.View()
	if !strings.Contains(view, "Item 31") {
		t.Error("expected selected row to be visible")
	}
	if strings.Contains(view, "Item 01") {
		t.Error("expected first rows to scroll out of view")
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("Mug", 6); got != "Mug   " {
		t.Errorf("expected padding, got %q", got)
	}
	if got := fitWidth("Ceramic coffee mug", 8); got != "Ceramic…" {
		t.Errorf("expected truncation, got %q", got)
	}
}

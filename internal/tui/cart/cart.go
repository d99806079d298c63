// ABOUTME: Cart component showing the buyer's items, subtotals and total
// ABOUTME: Holds a cursor so the app can adjust or remove the selected line

package cart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/tui/icons"
	"github.com/shopdemo/storefront/internal/tui/styles"
	"github.com/shopdemo/storefront/internal/tui/widgets"
)

// Cart displays cart items
type Cart struct {
	items  []client.CartItem
	loaded bool
	cursor int
	width  int
	height int
}

// New creates an empty cart view
func New(width, height int) *Cart {
	return &Cart{width: width, height: height}
}

// SetItems replaces the cart contents
func (c *Cart) SetItems(items []client.CartItem) {
	c.items = items
	c.loaded = true
	c.clamp()
}

// SetSize updates the dimensions
func (c *Cart) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Len returns the number of lines in the cart
func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) MoveUp() {
	c.cursor--
	c.clamp()
}

func (c *Cart) MoveDown() {
	c.cursor++
	c.clamp()
}

// Selected returns the cart item under the cursor
func (c *Cart) Selected() (*client.CartItem, bool) {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		return nil, false
	}
	return &c.items[c.cursor], true
}

// Total sums the subtotals of all items
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.items {
		total += c.items[i].Subtotal()
	}
	return total
}

// Quantity sums the units across all lines
func (c *Cart) Quantity() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) clamp() {
	if c.cursor >= len(c.items) {
		c.cursor = len(c.items) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// View renders the cart
func (c *Cart) View() string {
	if !c.loaded {
		return "Loading cart..."
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Cart", icons.Cart.String())))
	sb.WriteString("\n")

	if len(c.items) == 0 {
		sb.WriteString(styles.Subtitle.Render("Your cart is empty."))
		return sb.String()
	}

	for i := range c.items {
		item := &c.items[i]
		name := fmt.Sprintf("product #%d", item.ProductID)
		unit := "-"
		if item.Product != nil {
			name = item.Product.Name
			unit = fmt.Sprintf("$%.2f", item.Product.Price)
		}
		marker := "  "
		rowStyle := styles.Row
		if i == c.cursor {
			marker = styles.Selected.Render("▸ ")
			rowStyle = styles.Selected
		}
		sb.WriteString(fmt.Sprintf("%s%s %8s x %-3d %s\n",
			marker,
			rowStyle.Render(fmt.Sprintf("%-28s", name)),
			unit,
			item.Quantity,
			styles.Price.Render(fmt.Sprintf("$%.2f", item.Subtotal())),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.CountBlock(icons.Product, "Items", c.Quantity(), "units", widgets.DefaultMetricBlockConfig()),
		"  ",
		widgets.MoneyBlock(icons.Money, "Total", c.Total(), "press c to checkout", widgets.DefaultMetricBlockConfig()),
	))
	return sb.String()
}

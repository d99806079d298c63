// ABOUTME: Catalog component listing products with a cursor and detail pane
// ABOUTME: Used for the public catalog and for a seller's own products

package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/tui/icons"
	"github.com/shopdemo/storefront/internal/tui/styles"
	"github.com/shopdemo/storefront/internal/tui/widgets"
)

// detailLines is the height reserved below the list for the selected product
const detailLines = 7

// Catalog displays a list of products
type Catalog struct {
	title    string
	products []client.Product
	loaded   bool
	cursor   int
	offset   int
	width    int
	height   int
}

// New creates a catalog view. Products are set once loaded.
func New(title string, width, height int) *Catalog {
	return &Catalog{
		title:  title,
		width:  width,
		height: height,
	}
}

// SetProducts replaces the list, keeping the cursor in range
func (c *Catalog) SetProducts(products []client.Product) {
	c.products = products
	c.loaded = true
	c.clamp()
}

// SetSize updates the catalog dimensions
func (c *Catalog) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.clamp()
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// MoveUp moves the cursor up one row
func (c *Catalog) MoveUp() {
	c.cursor--
	c.clamp()
}

// MoveDown moves the cursor down one row
func (c *Catalog) MoveDown() {
	c.cursor++
	c.clamp()
}

// Selected returns the product under the cursor
func (c *Catalog) Selected() (*client.Product, bool) {
	if c.cursor < 0 || c.cursor >= len(c.products) {
		return nil, false
	}
	return &c.products[c.cursor], true
}

func (c *Catalog) visibleRows() int {
	rows := c.height - detailLines - 3
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (c *Catalog) clamp() {
	if c.cursor >= len(c.products) {
		c.cursor = len(c.products) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	rows := c.visibleRows()
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+rows {
		c.offset = c.cursor - rows + 1
	}
}

// View renders the catalog
func (c *Catalog) View() string {
	if !c.loaded {
		return "Loading products..."
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", icons.Store.String(), c.title)))
	sb.WriteString("\n")

	if len(c.products) == 0 {
		sb.WriteString(styles.Subtitle.Render("No products found."))
		return lipgloss.NewStyle().Width(c.width).Render(sb.String())
	}

	nameWidth := c.width - 32
	if nameWidth < 16 {
		nameWidth = 16
	}

	end := min(len(c.products), c.offset+c.visibleRows())
	for i := c.offset; i < end; i++ {
		p := c.products[i]
		marker := "  "
		rowStyle := styles.Row
		if i == c.cursor {
			marker = styles.Selected.Render("▸ ")
			rowStyle = styles.Selected
		}
		name := rowStyle.Render(fitWidth(p.Name, nameWidth))
		price := styles.Price.Render(fmt.Sprintf("%10s", fmt.Sprintf("$%.2f", p.Price)))
		sb.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, name, price, widgets.StockBadge(p.Stock)))
	}
	if len(c.products) > end || c.offset > 0 {
		sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("  %d-%d of %d", c.offset+1, end, len(c.products))))
		sb.WriteString("\n")
	}

	if p, ok := c.Selected(); ok {
		sb.WriteString("\n")
		sb.WriteString(c.renderDetail(p))
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func (c *Catalog) renderDetail(p *client.Product) string {
	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("#%d %s", p.ID, p.Name)))
	sb.WriteString("\n")
	if p.Description != "" {
		sb.WriteString(p.Description)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%s %s   %s\n", icons.Money.String(), styles.Price.Render(fmt.Sprintf("$%.2f", p.Price)), widgets.StatusText(fmt.Sprintf("%d units", p.Stock), widgets.StockLevel(p.Stock))))
	if p.ImageURL != "" {
		sb.WriteString(styles.Subtitle.Render(p.ImageURL))
	}
	return sb.String()
}

// fitWidth pads or truncates s to exactly width cells
func fitWidth(s string, width int) string {
	if lipgloss.Width(s) > width {
		r := []rune(s)
		if len(r) > width-1 {
			r = r[:width-1]
		}
		s = string(r) + "…"
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

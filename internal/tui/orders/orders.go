// ABOUTME: Order history component with a list and the selected order's lines
// ABOUTME: Shows status badges, discounts and the amount actually paid

package orders

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/tui/icons"
	"github.com/shopdemo/storefront/internal/tui/styles"
	"github.com/shopdemo/storefront/internal/tui/widgets"
)

// History displays the buyer's orders
type History struct {
	orders []client.Order
	loaded bool
	cursor int
	width  int
	height int
}

// New creates an order history view
func New(width, height int) *History {
	return &History{width: width, height: height}
}

// SetOrders replaces the listed orders
func (h *History) SetOrders(orders []client.Order) {
	h.orders = orders
	h.loaded = true
	h.clamp()
}

// SetSize updates the dimensions
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Len returns the number of orders
func (h *History) Len() int {
	return len(h.orders)
}

func (h *History) MoveUp() {
	h.cursor--
	h.clamp()
}

func (h *History) MoveDown() {
	h.cursor++
	h.clamp()
}

// Selected returns the order under the cursor
func (h *History) Selected() (*client.Order, bool) {
	if h.cursor < 0 || h.cursor >= len(h.orders) {
		return nil, false
	}
	return &h.orders[h.cursor], true
}

func (h *History) clamp() {
	if h.cursor >= len(h.orders) {
		h.cursor = len(h.orders) - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

// View renders the list beside the selected order's detail
func (h *History) View() string {
	if !h.loaded {
		return "Loading orders..."
	}

	title := styles.Title.Render(fmt.Sprintf("%s Orders", icons.Order.String()))
	if len(h.orders) == 0 {
		return title + "\n" + styles.Subtitle.Render("No orders yet.")
	}

	listWidth := 36
	detailWidth := h.width - listWidth - 6
	if detailWidth < 30 {
		// Too narrow for side by side
		return title + "\n" + h.renderList() + "\n" + h.renderDetail()
	}

	list := styles.Panel.Width(listWidth).Render(h.renderList())
	detail := styles.ActivePanel.Width(detailWidth).Render(h.renderDetail())
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
}

func (h *History) renderList() string {
	var sb strings.Builder
	for i := range h.orders {
		o := &h.orders[i]
		marker := "  "
		rowStyle := styles.Row
		if i == h.cursor {
			marker = styles.Selected.Render("▸ ")
			rowStyle = styles.Selected
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			rowStyle.Render(fmt.Sprintf("#%-5d %10s", o.ID, fmt.Sprintf("$%.2f", o.Amount()))),
			widgets.OrderStatusBadge(o.Status),
		))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (h *History) renderDetail() string {
	o, ok := h.Selected()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("Order #%d", o.ID)))
	sb.WriteString("  ")
	sb.WriteString(widgets.OrderStatusBadge(o.Status))
	sb.WriteString("\n")
	if o.CreatedAt != "" {
		sb.WriteString(styles.Subtitle.Render(o.CreatedAt))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, item := range o.Items {
		name := fmt.Sprintf("product #%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		sb.WriteString(fmt.Sprintf("%-24s x%-3d %s\n", name, item.Quantity, styles.Price.Render(fmt.Sprintf("$%.2f", item.Price))))
	}
	if len(o.Items) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%s %s\n", styles.KeyStyle.Render("Total:"), fmt.Sprintf("$%.2f", o.TotalAmount)))
	if o.Discount > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", styles.KeyStyle.Render("Discount:"), widgets.DiscountBadge(o.Discount, o.CouponCode)))
	}
	sb.WriteString(fmt.Sprintf("%s %s", styles.KeyStyle.Render("Paid:"), styles.Price.Render(fmt.Sprintf("$%.2f", o.Amount()))))
	return sb.String()
}

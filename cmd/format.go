// ABOUTME: Shared output helpers for human-readable tables and JSON
// ABOUTME: Tables render with lipgloss so they match the TUI look

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/shopdemo/storefront/internal/client"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable formats rows under headers
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(data))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatProductsHuman renders a product list
func formatProductsHuman(products []client.Product) string {
	if len(products) == 0 {
		return "No products found."
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{id(p.ID), p.Name, money(p.Price), strconv.Itoa(p.Stock)})
	}
	return renderTable([]string{"ID", "Name", "Price", "Stock"}, rows)
}

// formatProductHuman renders one product
func formatProductHuman(p *client.Product) string {
	out := fmt.Sprintf(`Product:      #%d %s
Price:        %s
Stock:        %d`, p.ID, p.Name, money(p.Price), p.Stock)
	if p.Description != "" {
		out += "\nDescription:  " + p.Description
	}
	if p.ImageURL != "" {
		out += "\nImage:        " + p.ImageURL
	}
	return out
}

// formatCartHuman renders the cart with a total line
func formatCartHuman(items []client.CartItem) string {
	if len(items) == 0 {
		return "Your cart is empty."
	}
	var total float64
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name := "product #" + id(it.ProductID)
		if it.Product != nil {
			name = it.Product.Name
		}
		total += it.Subtotal()
		rows = append(rows, []string{id(it.ID), name, strconv.Itoa(it.Quantity), money(it.Subtotal())})
	}
	return renderTable([]string{"Item", "Product", "Qty", "Subtotal"}, rows) + "\nTotal: " + money(total)
}

// formatOrdersHuman renders an order list
func formatOrdersHuman(orders []client.Order) string {
	if len(orders) == 0 {
		return "No orders yet."
	}
	rows := make([][]string, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, []string{id(o.ID), o.CreatedAt, o.Status, money(o.Amount())})
	}
	return renderTable([]string{"Order", "Created", "Status", "Amount"}, rows)
}

// formatOrderHuman renders one order with its lines
func formatOrderHuman(o *client.Order) string {
	out := fmt.Sprintf(`Order:        #%d
Status:       %s
Created:      %s
Total:        %s`, o.ID, o.Status, o.CreatedAt, money(o.TotalAmount))
	if o.Discount > 0 {
		out += fmt.Sprintf("\nDiscount:     -%s (%s)\nPaid:         %s", money(o.Discount), o.CouponCode, money(o.FinalAmount))
	}
	if len(o.Items) > 0 {
		rows := make([][]string, 0, len(o.Items))
		for _, it := range o.Items {
			name := "product #" + id(it.ProductID)
			if it.Product != nil {
				name = it.Product.Name
			}
			rows = append(rows, []string{name, strconv.Itoa(it.Quantity), money(it.Price)})
		}
		out += "\n" + renderTable([]string{"Product", "Qty", "Price"}, rows)
	}
	return out
}

// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Role, stock and order-status badges plus colored inline status text

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/session"
	"github.com/shopdemo/storefront/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// LowStockThreshold marks stock counts shown as a warning
const LowStockThreshold = 5

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func colors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := colors(level)
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// RoleBadge renders the session role, or GUEST when logged out
func RoleBadge(role session.Role) string {
	switch role {
	case session.RoleBuyer:
		return Badge("BUYER", StatusInfo)
	case session.RoleSeller:
		return Badge("SELLER", StatusOK)
	case "":
		return Badge("GUEST", StatusNeutral)
	default:
		return Badge(strings.ToUpper(string(role)), StatusNeutral)
	}
}

// StockLevel classifies a stock count
func StockLevel(stock int) StatusLevel {
	if stock <= 0 {
		return StatusCritical
	}
	if stock <= LowStockThreshold {
		return StatusWarning
	}
	return StatusOK
}

// StockBadge renders a stock count badge
func StockBadge(stock int) string {
	if stock <= 0 {
		return Badge("SOLD OUT", StatusCritical)
	}
	return Badge(fmt.Sprintf("%d in stock", stock), StockLevel(stock))
}

// OrderStatusLevel maps backend order statuses to levels
func OrderStatusLevel(status string) StatusLevel {
	switch strings.ToUpper(status) {
	case "COMPLETED":
		return StatusOK
	case "PENDING":
		return StatusWarning
	case "CANCELLED":
		return StatusCritical
	default:
		return StatusNeutral
	}
}

// OrderStatusBadge renders an order status badge
func OrderStatusBadge(status string) string {
	if status == "" {
		status = "--"
	}
	return Badge(strings.ToUpper(status), OrderStatusLevel(status))
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := colors(level)
	style := lipgloss.NewStyle().Foreground(bg)
	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := colors(level)
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(bg).Render(text))
}

// DiscountBadge renders the savings from a coupon, or nothing when none applied
func DiscountBadge(discount float64, coupon string) string {
	if discount <= 0 {
		return ""
	}
	text := fmt.Sprintf("-$%.2f", discount)
	if coupon != "" {
		text += " " + coupon
	}
	return Badge(text, StatusOK)
}

// ABOUTME: Test to verify header/footer width alignment
// ABOUTME: Ensures the frame spans the terminal and shows the session identity

package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/session/sessiontest"
)

func TestFrameAlignment(t *testing.T) {
	widths := []int{60, 80, 100, 120}

	for _, targetWidth := range widths {
		t.Run(fmt.Sprintf("width-%d", targetWidth), func(t *testing.T) {
			app, _ := newTestApp(t, sessiontest.Buyer(t), nil)

			model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
			app = model.(*App)

			lines := strings.Split(app.View(), "\n")

			// Frame clamps to a minimum of 80 for usability
			expectedWidth := max(targetWidth, minTerminalWidth)

			header := lines[0]
			if !strings.HasPrefix(header, "╭") {
				t.Fatalf("expected header on first line, got %q", header)
			}
			if w := lipgloss.Width(header); w != expectedWidth {
				t.Errorf("header width mismatch: expected %d, got %d", expectedWidth, w)
			}

			footer := lines[len(lines)-1]
			if !strings.HasPrefix(footer, "╰") {
				t.Fatalf("expected footer on last line, got %q", footer)
			}
			if w := lipgloss.Width(footer); w != expectedWidth {
				t.Errorf("footer width mismatch: expected %d, got %d", expectedWidth, w)
			}
		})
	}
}

func TestHeaderShowsIdentity(t *testing.T) {
	guest, _ := newTestApp(t, "", nil)
	if header := guest.renderHeader(); !strings.Contains(header, "GUEST") {
		t.Errorf("expected guest badge, got %q", header)
	}

	seller, _ := newTestApp(t, sessiontest.Seller(t), nil)
	header := seller.renderHeader()
	if !strings.Contains(header, "seller") || !strings.Contains(header, "SELLER") {
		t.Errorf("expected seller identity, got %q", header)
	}
}

func TestFooterShortcutsFollowScreen(t *testing.T) {
	app, _ := newTestApp(t, sessiontest.Seller(t), nil)

	app.navigate(guard.SellerProducts)
	if footer := app.renderFooter(); !strings.Contains(footer, "Delete") {
		t.Errorf("expected seller shortcuts, got %q", footer)
	}

	app.navigate(guard.ProductsRoute)
	if footer := app.renderFooter(); !strings.Contains(footer, "Add to cart") {
		t.Errorf("expected catalog shortcuts, got %q", footer)
	}
}

func TestContentKeepsFrameVisible(t *testing.T) {
	app, _ := newTestApp(t, "", nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	app.navigate(guard.ProductsRoute)
	app.Update(productsLoadedMsg{products: sampleProducts})

	lines := strings.Split(app.View(), "\n")
	if len(lines) > 30 {
		t.Errorf("view has %d lines, more than the terminal height", len(lines))
	}
	if !strings.Contains(lines[0], "Storefront") {
		t.Error("header should be the first line")
	}
}

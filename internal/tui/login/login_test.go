// ABOUTME: Tests for the login form
// ABOUTME: Validates required fields, error reset and cancel handling

package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRequired(t *testing.T) {
	check := required("username")
	if err := check("  "); err == nil {
		t.Error("expected error for blank input")
	}
	if err := check("buyer"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewPrefillsUsername(t *testing.T) {
	f := New("buyer")
	if f.username != "buyer" {
		t.Errorf("expected prefilled username, got %q", f.username)
	}
}

func TestSetErrorClearsPassword(t *testing.T) {
	f := New("buyer")
	f.password = "wrong"

	f.SetError("Invalid username or password")

	if f.password != "" {
		t.Error("expected password to be cleared")
	}
	if f.username != "buyer" {
		t.Error("expected username to be kept")
	}
	if !strings.Contains(f.View(), "Invalid username or password") {
		t.Error("expected error in view")
	}
}

func TestEscCancels(t *testing.T) {
	f := New("")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg")
	}
}

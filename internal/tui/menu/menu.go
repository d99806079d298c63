// ABOUTME: Home menu listing the screens available to the current session
// ABOUTME: Options that need a role are labelled; the router still has the final say

package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/tui/styles"
)

// Actions that are not routes
const (
	ActionLogout = "logout"
	ActionQuit   = "quit"
)

// Session is the part of the session store the menu reads
type Session interface {
	IsAuthenticated() bool
	IsBuyer() bool
	IsSeller() bool
}

// SelectedMsg is sent when an option is chosen. Value is a route or an action.
type SelectedMsg struct {
	Value string
}

// CancelledMsg is sent when the menu is dismissed
type CancelledMsg struct{}

type option struct {
	label   string
	value   string
	enabled bool
	hint    string
}

// Menu is the home screen option list
type Menu struct {
	options  []option
	selected string
	form     *huh.Form
}

// New builds the menu for the current session
func New(s Session) *Menu {
	loggedIn := s.IsAuthenticated()
	buyer := s.IsBuyer()
	seller := s.IsSeller()

	opts := []option{
		{label: "Browse products", value: guard.ProductsRoute, enabled: true},
		{label: "My cart", value: guard.CartRoute, enabled: buyer, hint: "buyers only"},
		{label: "My orders", value: guard.OrdersRoute, enabled: buyer, hint: "buyers only"},
		{label: "My products", value: guard.SellerProducts, enabled: seller, hint: "sellers only"},
		{label: "Add a product", value: guard.SellerProductsNew, enabled: seller, hint: "sellers only"},
	}
	if loggedIn {
		opts = append(opts, option{label: "Log out", value: ActionLogout, enabled: true})
	} else {
		opts = append(opts, option{label: "Log in", value: guard.LoginRoute, enabled: true})
	}
	opts = append(opts, option{label: "Quit", value: ActionQuit, enabled: true})

	m := &Menu{options: opts, selected: guard.ProductsRoute}
	m.form = m.createForm()
	return m
}

func (m *Menu) createForm() *huh.Form {
	var options []huh.Option[string]
	for _, opt := range m.options {
		options = append(options, huh.NewOption(opt.Label(), opt.value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(styles.FormTheme()).WithShowHelp(false)
}

// Label returns the option text, with its role hint when disabled
func (o option) Label() string {
	if !o.enabled && o.hint != "" {
		return o.label + " (" + o.hint + ")"
	}
	return o.label
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		value := m.selected
		return m, func() tea.Msg { return SelectedMsg{Value: value} }
	}
	return m, cmd
}

// View implements tea.Model
func (m *Menu) View() string {
	return m.form.View()
}

// Selected returns the highlighted value
func (m *Menu) Selected() string {
	return m.selected
}

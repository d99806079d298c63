// ABOUTME: Login form as a bubbletea model
// ABOUTME: Collects username and password with huh and hands them to the app

package login

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/shopdemo/storefront/internal/tui/styles"
)

// SubmitMsg carries the entered credentials
type SubmitMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user leaves the form
type CancelledMsg struct{}

// Form is the login screen
type Form struct {
	username string
	password string
	form     *huh.Form
	err      string
}

// New creates a login form, prefilled with username when known
func New(username string) *Form {
	f := &Form{username: username}
	f.form = f.createForm()
	return f
}

func (f *Form) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&f.username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(required("password")),
		).Title("Log in").
			Description("Sign in with your storefront account"),
	).WithTheme(styles.FormTheme())
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// SetError shows a failed attempt and resets the form for another try
func (f *Form) SetError(msg string) {
	f.err = msg
	f.password = ""
	f.form = f.createForm()
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		submit := SubmitMsg{Username: strings.TrimSpace(f.username), Password: f.password}
		return f, func() tea.Msg { return submit }
	}
	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	view := f.form.View()
	if f.err != "" {
		view = styles.StatusCritical.Render(f.err) + "\n\n" + view
	}
	return view
}

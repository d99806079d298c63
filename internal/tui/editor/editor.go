// ABOUTME: Product editor as a bubbletea model for creating and updating products
// ABOUTME: Uses huh forms with a visual progress indicator for step navigation

package editor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/tui/icons"
	"github.com/shopdemo/storefront/internal/tui/styles"
)

// SavedMsg is sent when the editor completes. ProductID is 0 for a new product.
type SavedMsg struct {
	ProductID int64
	Input     *client.ProductInput
}

// CancelledMsg is sent when the editor is cancelled
type CancelledMsg struct{}

// Editor manages the product form flow as a bubbletea model
type Editor struct {
	productID int64
	input     *client.ProductInput
	form      *huh.Form
	step      int
	width     int

	// Form field values (strings for huh)
	name        string
	description string
	price       string
	stock       string
	imageURL    string
}

// Step names for progress indicator
var stepNames = []string{"Details", "Price & Stock"}

// New creates an editor. A nil product starts a new one.
func New(product *client.Product) *Editor {
	input := &client.ProductInput{Stock: 1}
	var productID int64

	if product != nil {
		productID = product.ID
		input.Name = product.Name
		input.Description = product.Description
		input.Price = product.Price
		input.Stock = product.Stock
		input.CategoryID = product.CategoryID
		input.ImageURL = product.ImageURL
	}

	e := &Editor{
		productID:   productID,
		input:       input,
		step:        1,
		name:        input.Name,
		description: input.Description,
		stock:       strconv.Itoa(input.Stock),
		imageURL:    input.ImageURL,
	}
	if input.Price > 0 {
		e.price = strconv.FormatFloat(input.Price, 'f', 2, 64)
	}

	e.form = e.createStep1Form()
	return e
}

// IsNew reports whether the editor creates a product
func (e *Editor) IsNew() bool {
	return e.productID == 0
}

func (e *Editor) title() string {
	if e.IsNew() {
		return "New product"
	}
	return fmt.Sprintf("Edit product #%d", e.productID)
}

func (e *Editor) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(255).
				Value(&e.name).
				Validate(validateName),
			huh.NewText().
				Title("Description").
				CharLimit(2000).
				Value(&e.description),
		).Title("Step 1: Details").
			Description(e.title()),
	).WithTheme(styles.FormTheme())
}

func (e *Editor) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Price").
				Placeholder("e.g., 19.99").
				Value(&e.price).
				Validate(validatePrice),
			huh.NewInput().
				Title("Stock").
				Placeholder("e.g., 10").
				CharLimit(7).
				Value(&e.stock).
				Validate(validateStock),
			huh.NewInput().
				Title("Image URL").
				Description("Optional. Upload with 'storefront products upload-image'").
				Value(&e.imageURL).
				Validate(validateImageURL),
		).Title("Step 2: Price & Stock").
			Description(e.title()),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (e *Editor) Init() tea.Cmd {
	return e.form.Init()
}

// Update implements tea.Model
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return e, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		return e.advanceStep()
	}
	return e, cmd
}

func (e *Editor) advanceStep() (tea.Model, tea.Cmd) {
	switch e.step {
	case 1:
		e.input.Name = strings.TrimSpace(e.name)
		e.input.Description = strings.TrimSpace(e.description)
		e.step = 2
		e.form = e.createStep2Form()
		return e, e.form.Init()

	case 2:
		e.input.Price, _ = strconv.ParseFloat(strings.TrimSpace(e.price), 64)
		e.input.Stock, _ = strconv.Atoi(strings.TrimSpace(e.stock))
		e.input.ImageURL = strings.TrimSpace(e.imageURL)

		saved := SavedMsg{ProductID: e.productID, Input: e.input}
		return e, func() tea.Msg { return saved }
	}
	return e, nil
}

// Retry returns to the first step keeping the entered values
func (e *Editor) Retry() tea.Cmd {
	e.step = 1
	e.form = e.createStep1Form()
	return e.form.Init()
}

// SetWidth sets the editor width for proper rendering
func (e *Editor) SetWidth(width int) {
	e.width = width
}

// View implements tea.Model
func (e *Editor) View() string {
	var sb strings.Builder
	sb.WriteString(e.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(e.form.View())
	return sb.String()
}

// renderProgress renders the step progress indicator
func (e *Editor) renderProgress() string {
	width := e.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < e.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == e.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │" is 5 chars of overhead
	barWidth := width - 5
	filledWidth := (e.step * barWidth) / len(stepNames)
	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	heading := icons.Product.String() + " " + e.title()
	topBorder := "┌─ " + titleStyle.Render(heading) + " " + strings.Repeat("─", max(0, width-5-lipgloss.Width(heading))) + "┐"
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressLine := "│  " + filledBar + emptyBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLine,
		bottomBorder,
	}, "\n"))
}

// GetInput returns the collected product fields
func (e *Editor) GetInput() *client.ProductInput {
	return e.input
}

func validateName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("name is required")
	}
	if len(s) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}
	return nil
}

func validatePrice(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive amount")
	}
	return nil
}

func validateStock(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("must be zero or a positive number")
	}
	return nil
}

func validateImageURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	return nil
}

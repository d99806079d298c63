// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes every screen change through the guard router and reacts to 401 redirects

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/session"
	"github.com/shopdemo/storefront/internal/tui/cart"
	"github.com/shopdemo/storefront/internal/tui/catalog"
	"github.com/shopdemo/storefront/internal/tui/editor"
	"github.com/shopdemo/storefront/internal/tui/icons"
	"github.com/shopdemo/storefront/internal/tui/login"
	"github.com/shopdemo/storefront/internal/tui/menu"
	"github.com/shopdemo/storefront/internal/tui/orders"
	"github.com/shopdemo/storefront/internal/tui/styles"
	"github.com/shopdemo/storefront/internal/tui/widgets"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenHome Screen = iota
	ScreenLogin
	ScreenCatalog
	ScreenCart
	ScreenCheckout
	ScreenOrders
	ScreenSellerProducts
	ScreenEditor
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before header and footer stop shrinking
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

const sessionExpiredFlash = "Your session has ended. Please log in again."

// Deps are the collaborators the TUI drives
type Deps struct {
	Client    *client.Client
	Session   *session.Store
	Router    *guard.Router
	Navigator *guard.Recorder
}

// productsLoadedMsg is sent when a product list arrives
type productsLoadedMsg struct {
	products []client.Product
	err      error
}

// cartLoadedMsg is sent when the cart arrives
type cartLoadedMsg struct {
	items []client.CartItem
	err   error
}

// ordersLoadedMsg is sent when the order history arrives
type ordersLoadedMsg struct {
	orders []client.Order
	err    error
}

// loggedInMsg is sent when the login call returns
type loggedInMsg struct {
	resp *client.AuthResponse
	err  error
}

// actionDoneMsg is sent when a mutating call returns. On success the app
// shows flash and navigates to next.
type actionDoneMsg struct {
	flash string
	next  string
	err   error
}

// App is the root model for the TUI
type App struct {
	ctx     context.Context
	client  *client.Client
	session *session.Store
	router  *guard.Router
	nav     *guard.Recorder

	screen     Screen
	width      int
	height     int
	err        error
	flash      string
	loading    bool
	lastUpdate time.Time

	// Child models
	menu      *menu.Menu
	loginForm *login.Form
	catalog   *catalog.Catalog
	cart      *cart.Cart
	orders    *orders.History
	editor    *editor.Editor
	spinner   spinner.Model

	checkoutForm *huh.Form
	coupon       string
	editing      *client.Product
}

// New creates a new TUI application
func New(deps Deps) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	return &App{
		ctx:     context.Background(),
		client:  deps.Client,
		session: deps.Session,
		router:  deps.Router,
		nav:     deps.Navigator,
		screen:  ScreenHome,
		menu:    menu.New(deps.Session),
		spinner: sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.navigate(guard.HomeRoute)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a.forwardToForm(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case menu.SelectedMsg:
		return a.handleMenuSelected(msg)

	case menu.CancelledMsg:
		return a, tea.Quit

	case login.SubmitMsg:
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, a.login(msg.Username, msg.Password))

	case login.CancelledMsg, editor.CancelledMsg:
		if a.screen == ScreenEditor {
			return a, a.navigate(guard.SellerProducts)
		}
		return a, a.navigate(guard.HomeRoute)

	case editor.SavedMsg:
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, a.saveProduct(msg))

	case loggedInMsg:
		return a.handleLoggedIn(msg)

	case productsLoadedMsg:
		if cmd, redirected := a.finishRequest(msg.err); redirected || msg.err != nil {
			return a, cmd
		}
		if a.catalog != nil {
			a.catalog.SetProducts(msg.products)
		}
		return a, nil

	case cartLoadedMsg:
		if cmd, redirected := a.finishRequest(msg.err); redirected || msg.err != nil {
			return a, cmd
		}
		if a.cart != nil {
			a.cart.SetItems(msg.items)
		}
		return a, nil

	case ordersLoadedMsg:
		if cmd, redirected := a.finishRequest(msg.err); redirected || msg.err != nil {
			return a, cmd
		}
		if a.orders != nil {
			a.orders.SetOrders(msg.orders)
		}
		return a, nil

	case actionDoneMsg:
		if cmd, redirected := a.finishRequest(msg.err); redirected {
			return a, cmd
		}
		if msg.err != nil {
			return a, a.recoverForm()
		}
		a.flash = msg.flash
		if msg.next != "" {
			return a, a.navigate(msg.next)
		}
		return a, a.reload()

	default:
		// huh forms need their internal messages
		return a.forwardToForm(msg)
	}
}

// forwardToForm passes msg to whichever form-backed screen is active
func (a *App) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenHome:
		if a.menu != nil {
			model, cmd := a.menu.Update(msg)
			a.menu = model.(*menu.Menu)
			return a, cmd
		}
	case ScreenLogin:
		if a.loginForm != nil && !a.loading {
			model, cmd := a.loginForm.Update(msg)
			a.loginForm = model.(*login.Form)
			return a, cmd
		}
	case ScreenEditor:
		if a.editor != nil && !a.loading {
			model, cmd := a.editor.Update(msg)
			a.editor = model.(*editor.Editor)
			return a, cmd
		}
	case ScreenCheckout:
		return a.updateCheckout(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenHome, ScreenLogin, ScreenEditor, ScreenCheckout:
		return a.forwardToForm(msg)
	}

	if a.loading {
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		return a, a.navigate(guard.HomeRoute)
	case "r":
		a.flash = ""
		return a, a.reload()
	}

	switch a.screen {
	case ScreenCatalog:
		return a.updateCatalog(msg)
	case ScreenCart:
		return a.updateCart(msg)
	case ScreenOrders:
		return a.updateOrders(msg)
	case ScreenSellerProducts:
		return a.updateSellerProducts(msg)
	}
	return a, nil
}

func (a *App) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.catalog.MoveUp()
	case "down", "j":
		a.catalog.MoveDown()
	case "c":
		return a, a.navigate(guard.CartRoute)
	case "a":
		p, ok := a.catalog.Selected()
		if !ok {
			return a, nil
		}
		if !a.router.Resolve(guard.CartRoute).Proceeds() {
			a.flash = "Log in as a buyer to add items to your cart."
			return a, nil
		}
		if p.Stock <= 0 {
			a.flash = p.Name + " is sold out."
			return a, nil
		}
		return a, a.run(func(ctx context.Context) (string, error) {
			_, err := a.client.AddToCart(ctx, p.ID, 1)
			return fmt.Sprintf("Added %s to your cart.", p.Name), err
		}, "")
	}
	return a, nil
}

func (a *App) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.cart.MoveUp()
	case "down", "j":
		a.cart.MoveDown()
	case "+", "=":
		if item, ok := a.cart.Selected(); ok {
			return a, a.setQuantity(*item, item.Quantity+1)
		}
	case "-":
		if item, ok := a.cart.Selected(); ok {
			if item.Quantity <= 1 {
				a.flash = "Press d to remove the last unit."
				return a, nil
			}
			return a, a.setQuantity(*item, item.Quantity-1)
		}
	case "d":
		if item, ok := a.cart.Selected(); ok {
			id := item.ID
			return a, a.run(func(ctx context.Context) (string, error) {
				return "Item removed.", a.client.RemoveCartItem(ctx, id)
			}, "")
		}
	case "c":
		if a.cart.Len() == 0 {
			a.flash = "Your cart is empty."
			return a, nil
		}
		return a, a.startCheckout()
	}
	return a, nil
}

func (a *App) updateOrders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.orders.MoveUp()
	case "down", "j":
		a.orders.MoveDown()
	}
	return a, nil
}

func (a *App) updateSellerProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.catalog.MoveUp()
	case "down", "j":
		a.catalog.MoveDown()
	case "n":
		a.editing = nil
		return a, a.navigate(guard.SellerProductsNew)
	case "e":
		if p, ok := a.catalog.Selected(); ok {
			product := *p
			a.editing = &product
			return a, a.navigate(guard.SellerProductsEdit)
		}
	case "d":
		if p, ok := a.catalog.Selected(); ok {
			id, name := p.ID, p.Name
			return a, a.run(func(ctx context.Context) (string, error) {
				return fmt.Sprintf("Deleted %s.", name), a.client.DeleteProduct(ctx, id)
			}, "")
		}
	}
	return a, nil
}

func (a *App) setQuantity(item client.CartItem, quantity int) tea.Cmd {
	return a.run(func(ctx context.Context) (string, error) {
		_, err := a.client.UpdateCartItem(ctx, item.ID, quantity)
		return "", err
	}, "")
}

// startCheckout asks for an optional coupon before placing the order
func (a *App) startCheckout() tea.Cmd {
	a.coupon = ""
	a.checkoutForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Coupon code").
				Description("Leave empty to pay the full amount").
				Value(&a.coupon),
		).Title(fmt.Sprintf("Checkout $%.2f", a.cart.Total())),
	).WithTheme(styles.FormTheme())
	a.screen = ScreenCheckout
	return a.checkoutForm.Init()
}

func (a *App) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.checkoutForm == nil || a.loading {
		return a, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.checkoutForm = nil
		a.screen = ScreenCart
		return a, nil
	}

	form, cmd := a.checkoutForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.checkoutForm = f
	}
	if a.checkoutForm.State != huh.StateCompleted {
		return a, cmd
	}

	coupon := strings.TrimSpace(a.coupon)
	return a, a.run(func(ctx context.Context) (string, error) {
		order, err := a.client.Checkout(ctx, coupon)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Order #%d placed for $%.2f.", order.ID, order.Amount()), nil
	}, guard.OrdersRoute)
}

func (a *App) handleMenuSelected(msg menu.SelectedMsg) (tea.Model, tea.Cmd) {
	switch msg.Value {
	case menu.ActionQuit:
		return a, tea.Quit
	case menu.ActionLogout:
		a.session.Logout()
		a.flash = "Logged out."
		return a, a.navigate(guard.HomeRoute)
	case guard.SellerProductsNew:
		a.editing = nil
	}
	return a, a.navigate(msg.Value)
}

func (a *App) handleLoggedIn(msg loggedInMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	a.nav.Take()

	if a.loginForm == nil {
		a.loginForm = login.New("")
	}
	if msg.err != nil {
		a.loginForm.SetError(loginError(msg.err))
		return a, a.loginForm.Init()
	}
	if !a.session.Establish(msg.resp.Token, msg.resp.Identity()) {
		a.loginForm.SetError("The server returned an invalid credential.")
		return a, a.loginForm.Init()
	}

	a.flash = "Welcome, " + a.username() + "."
	return a, a.navigate(guard.HomeRoute)
}

func loginError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// recoverForm reopens a completed form after its call failed
func (a *App) recoverForm() tea.Cmd {
	switch a.screen {
	case ScreenEditor:
		if a.editor != nil {
			return a.editor.Retry()
		}
	case ScreenCheckout:
		a.checkoutForm = nil
		a.screen = ScreenCart
	}
	return nil
}

// navigate resolves route through the router and shows where it lands
func (a *App) navigate(route string) tea.Cmd {
	d := a.router.Navigate(route)
	a.nav.Take()
	a.err = nil

	switch d.Outcome {
	case guard.RedirectedLogin:
		a.flash = "Please log in to continue."
	case guard.RedirectedHome:
		a.flash = "That page is not available for your account."
	}
	return a.show(d.To)
}

// show switches to the screen for route and starts its loader
func (a *App) show(route string) tea.Cmd {
	a.checkoutForm = nil
	a.loading = false

	switch route {
	case guard.LoginRoute:
		a.screen = ScreenLogin
		a.loginForm = login.New(a.username())
		return a.loginForm.Init()

	case guard.ProductsRoute:
		a.screen = ScreenCatalog
		a.catalog = catalog.New("Products", a.innerWidth(), a.contentHeight())
		return a.reload()

	case guard.CartRoute:
		a.screen = ScreenCart
		a.cart = cart.New(a.innerWidth(), a.contentHeight())
		return a.reload()

	case guard.OrdersRoute:
		a.screen = ScreenOrders
		a.orders = orders.New(a.innerWidth(), a.contentHeight())
		return a.reload()

	case guard.SellerProducts:
		a.screen = ScreenSellerProducts
		a.catalog = catalog.New("My products", a.innerWidth(), a.contentHeight())
		return a.reload()

	case guard.SellerProductsNew, guard.SellerProductsEdit:
		product := a.editing
		if route == guard.SellerProductsNew {
			product = nil
		}
		a.screen = ScreenEditor
		a.editor = editor.New(product)
		a.editor.SetWidth(a.contentWidth())
		return a.editor.Init()

	default:
		a.screen = ScreenHome
		a.menu = menu.New(a.session)
		return a.menu.Init()
	}
}

// reload refetches the data behind the current screen
func (a *App) reload() tea.Cmd {
	load := a.loader()
	if load == nil {
		return nil
	}
	a.loading = true
	return tea.Batch(a.spinner.Tick, load)
}

// loader returns the fetch for the current screen, nil when it has no data
func (a *App) loader() tea.Cmd {
	switch a.screen {
	case ScreenCatalog:
		return a.loadProducts(a.client.ListProducts)
	case ScreenSellerProducts:
		return a.loadProducts(a.client.MyProducts)
	case ScreenCart:
		return a.loadCart()
	case ScreenOrders:
		return a.loadOrders()
	}
	return nil
}

// finishRequest clears the loading state and follows any navigation the
// client requested while the call was in flight
func (a *App) finishRequest(err error) (tea.Cmd, bool) {
	a.loading = false
	if route, ok := a.nav.Take(); ok {
		if route == guard.LoginRoute {
			a.flash = sessionExpiredFlash
		}
		return a.show(route), true
	}
	if err != nil {
		a.err = err
		return nil, false
	}
	a.err = nil
	a.lastUpdate = time.Now()
	return nil, false
}

func (a *App) loadProducts(fetch func(context.Context) ([]client.Product, error)) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		products, err := fetch(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (a *App) loadCart() tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		items, err := a.client.GetCart(ctx)
		return cartLoadedMsg{items: items, err: err}
	}
}

func (a *App) loadOrders() tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		list, err := a.client.ListOrders(ctx)
		if err == nil {
			err = a.client.FillOrderProducts(ctx, list)
		}
		return ordersLoadedMsg{orders: list, err: err}
	}
}

func (a *App) login(username, password string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		resp, err := a.client.Login(ctx, username, password)
		return loggedInMsg{resp: resp, err: err}
	}
}

func (a *App) saveProduct(msg editor.SavedMsg) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		var (
			p   *client.Product
			err error
		)
		if msg.ProductID == 0 {
			p, err = a.client.CreateProduct(ctx, msg.Input)
		} else {
			p, err = a.client.UpdateProduct(ctx, msg.ProductID, msg.Input)
		}
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{flash: fmt.Sprintf("Saved %s.", p.Name), next: guard.SellerProducts}
	}
}

// run performs a mutating call; next is the route to show on success
func (a *App) run(call func(context.Context) (string, error), next string) tea.Cmd {
	ctx := a.ctx
	a.loading = true
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		flash, err := call(ctx)
		return actionDoneMsg{flash: flash, next: next, err: err}
	})
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch {
	case a.screen == ScreenHome:
		content = a.viewHome()
	case a.screen == ScreenLogin && a.loginForm != nil:
		content = a.viewForm(a.loginForm)
	case a.screen == ScreenEditor && a.editor != nil:
		content = a.viewForm(a.editor)
	case a.screen == ScreenCheckout && a.checkoutForm != nil:
		content = a.viewForm(a.checkoutForm)
	case (a.screen == ScreenCatalog || a.screen == ScreenSellerProducts) && a.catalog != nil:
		content = a.viewPanel(a.catalog)
	case a.screen == ScreenCart && a.cart != nil:
		content = a.viewPanel(a.cart)
	case a.screen == ScreenOrders && a.orders != nil:
		content = a.viewPanel(a.orders)
	}

	return a.wrapWithFrame(a.renderStatus() + content)
}

type viewer interface {
	View() string
}

func (a *App) viewHome() string {
	if a.menu == nil {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ActivePanel.Render(a.menu.View()),
		"  ",
		a.renderAccount(),
	)
}

func (a *App) viewForm(v viewer) string {
	if a.loading {
		return a.spinner.View() + " Working..."
	}
	return v.View()
}

func (a *App) viewPanel(v viewer) string {
	body := v.View()
	if a.loading {
		body = a.spinner.View() + " Loading...\n\n" + body
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(body)
}

// renderStatus shows the last error or flash above the content
func (a *App) renderStatus() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n"
	}
	if a.flash != "" {
		return styles.Flash.Render(a.flash) + "\n"
	}
	return ""
}

// renderAccount summarizes the session beside the home menu
func (a *App) renderAccount() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.User.String() + " Account"))
	sb.WriteString("\n\n")

	user, ok := a.session.User()
	if !ok || !a.session.IsAuthenticated() {
		sb.WriteString(widgets.RoleBadge(""))
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Not logged in"))
		return styles.Panel.Render(sb.String())
	}

	sb.WriteString(fmt.Sprintf("%s %s\n", styles.ValueStyle.Render(user.Username), widgets.RoleBadge(user.Role)))
	if exp, ok := a.session.Expiry(); ok {
		sb.WriteString(styles.Subtitle.Render("Session expires " + exp.Local().Format("Jan 2 15:04")))
	}
	return styles.Panel.Render(sb.String())
}

func (a *App) username() string {
	if user, ok := a.session.User(); ok {
		return user.Username
	}
	return ""
}

func (a *App) resize() {
	if a.catalog != nil {
		a.catalog.SetSize(a.innerWidth(), a.contentHeight())
	}
	if a.cart != nil {
		a.cart.SetSize(a.innerWidth(), a.contentHeight())
	}
	if a.orders != nil {
		a.orders.SetSize(a.innerWidth(), a.contentHeight())
	}
	if a.editor != nil {
		a.editor.SetWidth(a.contentWidth())
	}
}

// contentWidth calculates the width inside a panel
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - panelPadding
}

// innerWidth is the width left for a component inside a padded panel
func (a *App) innerWidth() int {
	return a.contentWidth() - panelPadding
}

// contentHeight calculates the height available for list content
func (a *App) contentHeight() int {
	// Header, status line, panel border+padding (4), footer
	return a.height - 8
}

// renderHeader creates the header bar with app branding and the session identity
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.Store.String(), titleStyle.Render("Storefront"))

	rightText := " " + widgets.RoleBadge("") + " "
	if user, ok := a.session.User(); ok && a.session.IsAuthenticated() {
		rightText = " " + contextStyle.Render(user.Username) + " " + widgets.RoleBadge(user.Role) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	return borderStyle.Render("╭─") + leftText + borderStyle.Render(strings.Repeat("─", fillWidth)) + rightText + borderStyle.Render("─╮")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	shortcuts := a.shortcuts()

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && a.isListScreen() {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╰─") + leftText + borderStyle.Render(fill) + rightText + borderStyle.Render("─╯")
}

func (a *App) isListScreen() bool {
	switch a.screen {
	case ScreenCatalog, ScreenCart, ScreenOrders, ScreenSellerProducts:
		return true
	}
	return false
}

// shortcuts lists the keys the current screen responds to
func (a *App) shortcuts() []string {
	switch a.screen {
	case ScreenHome:
		return []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenLogin:
		return []string{"Tab Next", "Enter Submit", "Esc Cancel"}
	case ScreenCatalog:
		return []string{"↑↓ Navigate", "a Add to cart", "c Cart", "r Refresh", "b Back", "q Quit"}
	case ScreenCart:
		return []string{"+/- Quantity", "d Remove", "c Checkout", "r Refresh", "b Back"}
	case ScreenCheckout:
		return []string{"Enter Place order", "Esc Cancel"}
	case ScreenOrders:
		return []string{"↑↓ Navigate", "r Refresh", "b Back", "q Quit"}
	case ScreenSellerProducts:
		return []string{"n New", "e Edit", "d Delete", "r Refresh", "b Back"}
	case ScreenEditor:
		return []string{"Enter Next", "Esc Cancel"}
	}
	return nil
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI and blocks until it exits or ctx is cancelled
func Run(ctx context.Context, deps Deps) error {
	app := New(deps)
	app.ctx = ctx

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

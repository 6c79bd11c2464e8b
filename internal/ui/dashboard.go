package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lapscan/lapscan/internal/analyzer"
	"github.com/lapscan/lapscan/internal/dataset"
	"github.com/lapscan/lapscan/internal/emoji"
	"github.com/lapscan/lapscan/internal/filter"
)

// ViewState represents different views in the dashboard
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewOverview
	ViewBrands
	ViewPlatforms
	ViewSpecs
	ViewListings
	ViewBrandFilter
	ViewHelp
)

// sortColumns are the columns the listings table can be sorted by
var sortColumns = []string{"price", "rating", "ram", "storage", "brand"}

// DashboardModel is the interactive laptop market dashboard.
type DashboardModel struct {
	width    int
	height   int
	ready    bool
	quitting bool

	// Data state
	listings  []dataset.Listing // full cleaned dataset
	filtered  []dataset.Listing // after applying the selection
	summary   *analyzer.Summary
	engine    *analyzer.Engine
	selection *filter.Selection
	err       error
	computing bool

	// Brand filter state
	allBrands     []string
	brandSelected map[string]bool

	// Navigation state
	currentView   ViewState
	selectedIndex int
	maxIndex      int

	// Listings table state
	sortColumn int
	sortDesc   bool
	tableRows  int

	// Display settings
	currency string

	// Animation state
	spinnerFrame int
	tick         int

	// Colors and styles
	primaryColor   lipgloss.AdaptiveColor
	secondaryColor lipgloss.AdaptiveColor
	successColor   lipgloss.AdaptiveColor
	warningColor   lipgloss.AdaptiveColor
	errorColor     lipgloss.AdaptiveColor
	selectedColor  lipgloss.AdaptiveColor
}

// Options configures the dashboard.
type Options struct {
	Currency  string
	TableRows int
}

// NewDashboardModel creates a dashboard over the given cleaned listings.
// The selection holds the filters supplied on the command line; brand
// toggles in the UI modify it in place.
func NewDashboardModel(listings []dataset.Listing, sel *filter.Selection, engine *analyzer.Engine, opts Options) *DashboardModel {
	if sel == nil {
		sel = &filter.Selection{}
	}
	if opts.Currency == "" {
		opts.Currency = "₹"
	}
	if opts.TableRows <= 0 {
		opts.TableRows = 20
	}

	brands := distinctBrands(listings)
	selected := make(map[string]bool, len(brands))
	for _, b := range sel.Brands {
		selected[strings.ToLower(b)] = true
	}

	return &DashboardModel{
		listings:       listings,
		engine:         engine,
		selection:      sel,
		allBrands:      brands,
		brandSelected:  selected,
		currentView:    ViewLoading,
		computing:      true,
		tableRows:      opts.TableRows,
		currency:       opts.Currency,
		primaryColor:   lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"},
		secondaryColor: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		successColor:   lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
		warningColor:   lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"},
		errorColor:     lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"},
		selectedColor:  lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
	}
}

func distinctBrands(listings []dataset.Listing) []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, l := range listings {
		if _, ok := seen[l.Brand]; !ok {
			seen[l.Brand] = struct{}{}
			brands = append(brands, l.Brand)
		}
	}
	sort.Strings(brands)
	return brands
}

// Init initializes the dashboard
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		createSummaryCommand(m.engine, m.listings, *m.selection),
		tick(),
	)
}

// Update handles messages and navigation
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		return m.handleTick()
	case summaryMsg:
		return m.handleSummary(msg)
	case summaryErrorMsg:
		return m.handleSummaryError(msg)
	}

	return m, nil
}

// handleWindowResize handles window resize events
func (m *DashboardModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.handleQuit()
	case "esc":
		return m.handleEscape()
	case "h", "?":
		return m.handleHelp()
	case "up", "k":
		return m.handleMoveUp()
	case "down", "j":
		return m.handleMoveDown()
	case "enter", " ":
		return m.handleSelection()
	case "s":
		return m.handleSortColumn()
	case "o":
		return m.handleSortOrder()
	case "1", "2", "3", "4", "5", "f":
		return m.handleViewKey(msg.String())
	}
	return m, nil
}

// handleQuit handles quit commands
func (m *DashboardModel) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleEscape handles escape key
func (m *DashboardModel) handleEscape() (tea.Model, tea.Cmd) {
	if m.currentView != ViewOverview && m.currentView != ViewLoading {
		m.currentView = ViewOverview
		m.selectedIndex = 0
		m.updateMaxIndex()
	}
	return m, nil
}

// handleHelp handles help key
func (m *DashboardModel) handleHelp() (tea.Model, tea.Cmd) {
	if m.summary != nil {
		m.currentView = ViewHelp
	}
	return m, nil
}

// handleMoveUp handles up movement
func (m *DashboardModel) handleMoveUp() (tea.Model, tea.Cmd) {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
	return m, nil
}

// handleMoveDown handles down movement
func (m *DashboardModel) handleMoveDown() (tea.Model, tea.Cmd) {
	if m.selectedIndex < m.maxIndex {
		m.selectedIndex++
	}
	return m, nil
}

// handleSelection toggles the highlighted brand in the filter view.
func (m *DashboardModel) handleSelection() (tea.Model, tea.Cmd) {
	if m.currentView != ViewBrandFilter || m.selectedIndex >= len(m.allBrands) {
		return m, nil
	}

	brand := m.allBrands[m.selectedIndex]
	key := strings.ToLower(brand)
	if m.brandSelected[key] {
		delete(m.brandSelected, key)
	} else {
		m.brandSelected[key] = true
	}

	// A fresh slice each time: a pending summary command may still hold a
	// snapshot of the previous one.
	brands := make([]string, 0, len(m.brandSelected))
	for _, b := range m.allBrands {
		if m.brandSelected[strings.ToLower(b)] {
			brands = append(brands, b)
		}
	}
	m.selection.Brands = brands

	m.computing = true
	return m, tea.Batch(createSummaryCommand(m.engine, m.listings, *m.selection), tick())
}

// handleSortColumn cycles the listings sort column.
func (m *DashboardModel) handleSortColumn() (tea.Model, tea.Cmd) {
	if m.currentView == ViewListings {
		m.sortColumn = (m.sortColumn + 1) % len(sortColumns)
	}
	return m, nil
}

// handleSortOrder flips the listings sort direction.
func (m *DashboardModel) handleSortOrder() (tea.Model, tea.Cmd) {
	if m.currentView == ViewListings {
		m.sortDesc = !m.sortDesc
	}
	return m, nil
}

// handleViewKey handles view shortcuts
func (m *DashboardModel) handleViewKey(key string) (tea.Model, tea.Cmd) {
	if m.summary == nil {
		return m, nil
	}

	switch key {
	case "1":
		m.currentView = ViewOverview
	case "2":
		m.currentView = ViewBrands
	case "3":
		m.currentView = ViewPlatforms
	case "4":
		m.currentView = ViewSpecs
	case "5":
		m.currentView = ViewListings
	case "f":
		m.currentView = ViewBrandFilter
	}

	m.selectedIndex = 0
	m.updateMaxIndex()
	return m, nil
}

// handleTick handles timer ticks
func (m *DashboardModel) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerChars)
	if m.computing {
		return m, tick()
	}
	return m, nil
}

// handleSummary handles a completed recomputation
func (m *DashboardModel) handleSummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	m.summary = msg.summary
	m.filtered = msg.filtered
	m.computing = false
	m.err = nil
	if m.currentView == ViewLoading {
		m.currentView = ViewOverview
	}
	m.updateMaxIndex()
	return m, nil
}

// handleSummaryError handles recomputation errors
func (m *DashboardModel) handleSummaryError(msg summaryErrorMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	m.computing = false
	if m.currentView == ViewLoading {
		m.currentView = ViewOverview
	}
	return m, nil
}

// updateMaxIndex updates the maximum selectable index for current view
func (m *DashboardModel) updateMaxIndex() {
	switch m.currentView {
	case ViewBrandFilter:
		m.maxIndex = max(0, len(m.allBrands)-1)
	case ViewListings:
		m.maxIndex = max(0, min(m.tableRows, len(m.filtered))-1)
	default:
		m.maxIndex = 0
	}
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if !m.ready {
		return m.renderLoadingScreen()
	}

	if m.quitting {
		return m.renderGoodbyeScreen()
	}

	switch m.currentView {
	case ViewLoading:
		return m.renderLoadingScreen()
	case ViewOverview:
		return m.renderOverview()
	case ViewBrands:
		return m.renderGroupView(emoji.GetEmoji("trophy")+" Average Price by Brand", m.summary.Brands)
	case ViewPlatforms:
		return m.renderPlatformsView()
	case ViewSpecs:
		return m.renderSpecsView()
	case ViewListings:
		return m.renderListingsView()
	case ViewBrandFilter:
		return m.renderBrandFilterView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderOverview()
	}
}

func (m *DashboardModel) renderLoadingScreen() string {
	spinner := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(spinnerChars[m.spinnerFrame])

	loading := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("Crunching laptop prices" + strings.Repeat(".", (m.tick/5)%4))

	content := fmt.Sprintf("%s %s", spinner, loading)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *DashboardModel) renderGoodbyeScreen() string {
	goodbye := lipgloss.NewStyle().
		Foreground(m.successColor).
		Bold(true).
		Render("Happy laptop hunting! " + emoji.GetEmoji("laptop"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *DashboardModel) renderOverview() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("laptop") + " Laptop Market Dashboard")

	if m.err != nil {
		errorMsg := lipgloss.NewStyle().
			Foreground(m.errorColor).
			Render(emoji.GetEmoji("error") + " " + m.err.Error())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "", errorMsg))
	}

	if m.summary == nil || m.summary.TotalListings == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.warningColor).
			Render(emoji.GetEmoji("warning") + " No laptops match the current filters")
		hint := lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render("Press f to adjust the brand filter, Esc to reset the view")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "", empty, "", hint))
	}

	s := m.summary
	stats := fmt.Sprintf(
		emoji.GetEmoji("statistics")+" %d laptops • "+emoji.GetEmoji("money")+" avg %s • %d brands • %d platforms",
		s.TotalListings,
		formatMoney(m.currency, s.Price.Mean),
		s.BrandCount,
		s.PlatformCount,
	)

	statsStyled := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(stats)

	rangeLine := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(fmt.Sprintf("Price range: %s - %s",
			formatMoney(m.currency, s.Price.Min),
			formatMoney(m.currency, s.Price.Max)))

	var dealLines []string
	if len(s.CheapestPlatforms) > 0 {
		dealLines = append(dealLines, lipgloss.NewStyle().
			Foreground(m.successColor).
			Bold(true).
			Render(emoji.GetEmoji("target")+" Best deals"))
		limit := min(2, len(s.CheapestPlatforms))
		for i := 0; i < limit; i++ {
			p := s.CheapestPlatforms[i]
			dealLines = append(dealLines, lipgloss.NewStyle().
				Foreground(m.secondaryColor).
				Render(fmt.Sprintf("  %d. %s (avg %s, %d laptops)",
					i+1, p.Name, formatMoney(m.currency, p.MeanPrice), p.Count)))
		}
	}

	menuItems := []string{
		emoji.GetEmoji("trophy") + " 2 Brands",
		emoji.GetEmoji("store") + " 3 Platforms",
		emoji.GetEmoji("chart") + " 4 Spec Curves",
		emoji.GetEmoji("laptop") + " 5 Listings",
		emoji.GetEmoji("filter") + " f Brand Filter",
	}
	menuList := make([]string, 0, len(menuItems))
	for _, item := range menuItems {
		menuList = append(menuList, lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render("  "+item))
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(emoji.GetEmoji("door") + " q Quit • h Help")

	parts := []string{title, "", statsStyled, rangeLine, ""}
	if len(dealLines) > 0 {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, dealLines...), "")
	}
	parts = append(parts,
		lipgloss.JoinVertical(lipgloss.Left, menuList...),
		"",
		instructions,
	)

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 3).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderGroupView(title string, groups []analyzer.GroupStat) string {
	titleStyled := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(title)

	chart := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(renderGroupChart(groups, m.primaryColor, m.currency))

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyled,
		"",
		chart,
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 90))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderPlatformsView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("store") + " Platforms")

	priceTitle := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("Average Price")
	priceChart := renderGroupChart(m.summary.Platforms, m.primaryColor, m.currency)

	shareTitle := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("Market Share")
	shareChart := renderShareChart(m.summary.Platforms, m.primaryColor)

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		priceTitle,
		priceChart,
		"",
		shareTitle,
		shareChart,
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 90))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderSpecsView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("chart") + " Price by Spec")

	ramTitle := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("RAM")
	ramChart := renderCurveChart(m.summary.RAMCurve, m.primaryColor, m.currency, "GB")

	storageTitle := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("Storage")
	storageChart := renderCurveChart(m.summary.StorageCurve, m.primaryColor, m.currency, "GB")

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		ramTitle,
		ramChart,
		"",
		storageTitle,
		storageChart,
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 90))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderListingsView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("laptop") + " Listings")

	if len(m.filtered) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render("No laptops match the current filters")
		content := lipgloss.JoinVertical(lipgloss.Center, title, "", empty, "",
			lipgloss.NewStyle().Foreground(m.secondaryColor).Render("Press Esc to go back"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	rows := m.sortedListings()
	if len(rows) > m.tableRows {
		rows = rows[:m.tableRows]
	}

	order := "asc"
	if m.sortDesc {
		order = "desc"
	}
	sortLine := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Render(fmt.Sprintf("Sorted by %s (%s) • showing %d of %d",
			sortColumns[m.sortColumn], order, len(rows), len(m.filtered)))

	header := fmt.Sprintf("  %-16s %-12s %10s %7s %7s %10s",
		"Brand", "Platform", "Price", "Rating", "RAM", "Storage")
	headerStyled := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(header)

	lines := make([]string, 0, len(rows))
	for i, l := range rows {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(m.secondaryColor)

		if i == m.selectedIndex {
			prefix = "▶ "
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
		}

		text := fmt.Sprintf("%s%-16s %-12s %10s %7.1f %6sG %9sG",
			prefix,
			truncateCell(l.Brand, 16),
			truncateCell(l.Platform, 12),
			formatMoney(m.currency, l.Price),
			l.Rating,
			formatSpecSize(l.RAMGB),
			formatSpecSize(l.StorageGB))
		lines = append(lines, style.Render(text))
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • s Sort column • o Sort order • Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		sortLine,
		"",
		headerStyled,
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 110)).
		Height(min(m.height-4, 34))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

// sortedListings returns the filtered listings sorted by the active column.
func (m *DashboardModel) sortedListings() []dataset.Listing {
	rows := make([]dataset.Listing, len(m.filtered))
	copy(rows, m.filtered)

	column := sortColumns[m.sortColumn]
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		switch column {
		case "rating":
			less = rows[i].Rating < rows[j].Rating
		case "ram":
			less = rows[i].RAMGB < rows[j].RAMGB
		case "storage":
			less = rows[i].StorageGB < rows[j].StorageGB
		case "brand":
			less = rows[i].Brand < rows[j].Brand
		default:
			less = rows[i].Price < rows[j].Price
		}
		if m.sortDesc {
			return !less
		}
		return less
	})
	return rows
}

func (m *DashboardModel) renderBrandFilterView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("filter") + " Brand Filter")

	hint := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("No brands selected means all brands are included")

	brandList := make([]string, 0, len(m.allBrands))
	for i, brand := range m.allBrands {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(m.secondaryColor)

		if i == m.selectedIndex {
			prefix = "▶ "
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
		}

		check := "[ ]"
		if m.brandSelected[strings.ToLower(brand)] {
			check = "[x]"
			if i != m.selectedIndex {
				style = style.Foreground(m.successColor)
			}
		}

		brandList = append(brandList, style.Render(fmt.Sprintf("%s%s %s", prefix, check, brand)))
	}

	status := ""
	if m.computing {
		status = lipgloss.NewStyle().
			Foreground(m.warningColor).
			Render(spinnerChars[m.spinnerFrame] + " Recomputing...")
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • Enter/Space Toggle • Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		hint,
		"",
		lipgloss.JoinVertical(lipgloss.Left, brandList...),
		"",
		status,
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 70)).
		Height(min(m.height-4, 34))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderHelpView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("help") + " Dashboard Help")

	helpSections := []string{
		emoji.GetEmoji("target") + " Navigation:",
		"  ↑↓ or j/k    Move up/down in lists",
		"  Enter or Space    Toggle brand in the filter view",
		"  Esc    Go back to the overview",
		"",
		emoji.GetEmoji("number") + " Views:",
		"  1    Overview",
		"  2    Average price by brand",
		"  3    Average price by platform",
		"  4    Price by RAM/storage size",
		"  5    Listings table",
		"  f    Brand filter",
		"",
		emoji.GetEmoji("chart") + " Listings table:",
		"  s    Cycle sort column (price, rating, ram, storage, brand)",
		"  o    Flip sort order",
		"",
		emoji.GetEmoji("door") + " Exit:",
		"  q    Quit dashboard",
		"  Ctrl+C    Force quit",
	}

	var helpList []string
	for _, line := range helpSections {
		if strings.HasSuffix(line, ":") {
			helpList = append(helpList, lipgloss.NewStyle().
				Foreground(m.primaryColor).
				Bold(true).
				Render(line))
			continue
		}
		if line == "" {
			helpList = append(helpList, "")
			continue
		}
		helpList = append(helpList, lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render(line))
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("Press Esc to go back")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, helpList...),
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func truncateCell(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// Run starts the interactive dashboard.
func Run(listings []dataset.Listing, sel *filter.Selection, engine *analyzer.Engine, opts Options) error {
	model := NewDashboardModel(listings, sel, engine, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
